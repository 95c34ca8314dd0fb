package tempo

// Action is a time-evolving operation bound to one target at a time. Actions
// are driven by an ActionManager, which calls StartWithTarget once when the
// action is added, Step every frame, and Stop once IsDone reports true.
type Action interface {
	StartWithTarget(target Target)
	Step(dt float64)
	IsDone() bool
	Stop()

	// Tag is a non-unique label used by RemoveActionByTag and ActionByTag.
	Tag() int

	// OriginalTarget is the target the action was registered against. It
	// differs from the stepped target only for proxy actions.
	OriginalTarget() Target
}

// Speeder is implemented by actions that carry their own speed multiplier.
// The ActionManager scales dt by Speed() before calling Step.
type Speeder interface {
	Speed() float64
}

// FiniteAction is an Action with a known duration that can be sampled at any
// normalized progress. Composite actions (Sequence, Spawn, Repeat) drive their
// children through Progress instead of Step.
type FiniteAction interface {
	Action
	Duration() float64
	Elapsed() float64

	// Progress applies the state at t in [0, 1].
	Progress(t float64)
}

// BaseAction implements the bookkeeping part of Action. Embed it and provide
// Step and IsDone.
type BaseAction struct {
	target         Target
	originalTarget Target
	tag            int
}

// StartWithTarget binds the action to target.
func (a *BaseAction) StartWithTarget(target Target) {
	a.target = target
	a.originalTarget = target
}

// Stop unbinds the stepped target. The original target is kept so the
// action can still be looked up for removal.
func (a *BaseAction) Stop() {
	a.target = nil
}

// Target returns the target currently being stepped, or nil once stopped.
func (a *BaseAction) Target() Target {
	return a.target
}

// OriginalTarget implements Action.
func (a *BaseAction) OriginalTarget() Target {
	return a.originalTarget
}

// Tag implements Action.
func (a *BaseAction) Tag() int {
	return a.tag
}

// SetTag sets the lookup tag.
func (a *BaseAction) SetTag(tag int) {
	a.tag = tag
}

// IntervalAction is the base of every FiniteAction in this package: it turns
// Step(dt) calls into normalized Progress(t) calls. The first Step after
// StartWithTarget only establishes t=0.
type IntervalAction struct {
	BaseAction

	duration  float64
	elapsed   float64
	firstTick bool
	speed     float64
	progress  func(t float64)
	inited    bool
}

// InitInterval sets the duration and the progress function. Types embedding
// IntervalAction must call it from their constructor.
func (a *IntervalAction) InitInterval(duration float64, progress func(t float64)) {
	if duration < 0 {
		duration = 0
	}
	a.duration = duration
	a.firstTick = true
	a.speed = 1
	a.progress = progress
	a.inited = true
}

// StartWithTarget binds the action and rewinds it.
func (a *IntervalAction) StartWithTarget(target Target) {
	a.BaseAction.StartWithTarget(target)
	a.elapsed = 0
	a.firstTick = true
}

// Step advances the action by dt seconds.
func (a *IntervalAction) Step(dt float64) {
	if a.firstTick {
		a.firstTick = false
		a.elapsed = 0
	} else {
		a.elapsed += dt
	}

	t := 1.0
	if a.duration > epsilon {
		t = clamp01(a.elapsed / a.duration)
	}
	a.Progress(t)
}

// IsDone reports whether the full duration has elapsed.
func (a *IntervalAction) IsDone() bool {
	return !a.firstTick && a.elapsed >= a.duration
}

// Progress implements FiniteAction.
func (a *IntervalAction) Progress(t float64) {
	if a.progress != nil {
		a.progress(t)
	}
}

// Duration implements FiniteAction.
func (a *IntervalAction) Duration() float64 {
	return a.duration
}

// Elapsed implements FiniteAction.
func (a *IntervalAction) Elapsed() float64 {
	return a.elapsed
}

// Speed implements Speeder. An action that never went through InitInterval
// runs at 1.
func (a *IntervalAction) Speed() float64 {
	if !a.inited {
		return 1
	}
	return a.speed
}

// SetSpeed sets the multiplier the ActionManager applies to this action's dt.
func (a *IntervalAction) SetSpeed(speed float64) {
	a.speed = speed
}

// speedOf returns the dt multiplier for a, or 1 when a has none.
func speedOf(a Action) float64 {
	if s, ok := a.(Speeder); ok {
		return s.Speed()
	}
	return 1
}
