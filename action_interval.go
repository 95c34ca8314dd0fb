package tempo

// Sequence runs finite actions one after another. Its duration is the sum of
// its children's durations.
type Sequence struct {
	IntervalAction
	actions []FiniteAction
	offsets []float64
	current int
	started bool
}

// NewSequence creates a Sequence of the given actions.
func NewSequence(actions ...FiniteAction) *Sequence {
	s := &Sequence{
		actions: actions,
		offsets: make([]float64, len(actions)),
	}
	total := 0.0
	for i, a := range actions {
		s.offsets[i] = total
		total += a.Duration()
	}
	s.InitInterval(total, s.apply)
	return s
}

// StartWithTarget implements Action.
func (s *Sequence) StartWithTarget(target Target) {
	s.IntervalAction.StartWithTarget(target)
	s.current = 0
	s.started = false
}

// Stop stops the child that is still running, if any.
func (s *Sequence) Stop() {
	if s.started && s.current < len(s.actions) {
		s.actions[s.current].Stop()
	}
	s.started = false
	s.IntervalAction.Stop()
}

// apply finishes every child whose window ends before t and samples the
// child whose window contains t. Large steps never skip a child's end state.
func (s *Sequence) apply(t float64) {
	now := t * s.duration
	for s.current < len(s.actions) {
		a := s.actions[s.current]
		if !s.started {
			a.StartWithTarget(s.target)
			s.started = true
		}

		start := s.offsets[s.current]
		d := a.Duration()
		if t < 1 && now < start+d {
			local := 1.0
			if d > epsilon {
				local = clamp01((now - start) / d)
			}
			a.Progress(local)
			return
		}

		a.Progress(1)
		a.Stop()
		s.current++
		s.started = false
	}
}

// Spawn runs finite actions in parallel. Its duration is the longest child
// duration; shorter children hold their end state.
type Spawn struct {
	IntervalAction
	actions  []FiniteAction
	finished []bool
}

// NewSpawn creates a Spawn of the given actions.
func NewSpawn(actions ...FiniteAction) *Spawn {
	s := &Spawn{
		actions:  actions,
		finished: make([]bool, len(actions)),
	}
	longest := 0.0
	for _, a := range actions {
		longest = max(longest, a.Duration())
	}
	s.InitInterval(longest, s.apply)
	return s
}

// StartWithTarget implements Action.
func (s *Spawn) StartWithTarget(target Target) {
	s.IntervalAction.StartWithTarget(target)
	for i, a := range s.actions {
		a.StartWithTarget(target)
		s.finished[i] = false
	}
}

// Stop stops every child that has not finished.
func (s *Spawn) Stop() {
	for i, a := range s.actions {
		if !s.finished[i] {
			a.Stop()
			s.finished[i] = true
		}
	}
	s.IntervalAction.Stop()
}

func (s *Spawn) apply(t float64) {
	now := t * s.duration
	for i, a := range s.actions {
		if s.finished[i] {
			continue
		}
		local := 1.0
		if d := a.Duration(); t < 1 && d > epsilon {
			local = clamp01(now / d)
		}
		a.Progress(local)
		if local >= 1 {
			a.Stop()
			s.finished[i] = true
		}
	}
}

// Repeat runs a finite action a fixed number of times, restarting it against
// the same target for every cycle.
type Repeat struct {
	IntervalAction
	inner     FiniteAction
	times     int
	completed int
}

// NewRepeat creates a Repeat of inner, times times.
func NewRepeat(inner FiniteAction, times int) *Repeat {
	if times < 0 {
		times = 0
	}
	r := &Repeat{inner: inner, times: times}
	r.InitInterval(inner.Duration()*float64(times), r.apply)
	return r
}

// StartWithTarget implements Action.
func (r *Repeat) StartWithTarget(target Target) {
	r.IntervalAction.StartWithTarget(target)
	r.completed = 0
	if r.times > 0 {
		r.inner.StartWithTarget(target)
	}
}

// Stop stops the running cycle, if any.
func (r *Repeat) Stop() {
	if r.completed < r.times {
		r.inner.Stop()
		r.completed = r.times
	}
	r.IntervalAction.Stop()
}

// Completed returns the number of finished cycles.
func (r *Repeat) Completed() int {
	return r.completed
}

func (r *Repeat) apply(t float64) {
	if r.times == 0 {
		return
	}
	cycles := t * float64(r.times)
	if t >= 1 {
		cycles = float64(r.times)
	}
	for r.completed < r.times && cycles >= float64(r.completed+1) {
		r.inner.Progress(1)
		r.inner.Stop()
		r.completed++
		if r.completed < r.times {
			r.inner.StartWithTarget(r.target)
		}
	}
	if r.completed < r.times {
		r.inner.Progress(cycles - float64(r.completed))
	}
}

// Delay does nothing for a while. Mostly useful inside a Sequence.
type Delay struct {
	IntervalAction
}

// NewDelay creates a Delay of d seconds.
func NewDelay(d float64) *Delay {
	a := &Delay{}
	a.InitInterval(d, nil)
	return a
}

// TargetedAction runs inner on a fixed target while being registered against
// another one. The ActionManager files it under the registration target.
type TargetedAction struct {
	IntervalAction
	forced Target
	inner  FiniteAction
}

// NewTargetedAction creates an action that runs inner on target.
func NewTargetedAction(target Target, inner FiniteAction) *TargetedAction {
	a := &TargetedAction{forced: target, inner: inner}
	a.InitInterval(inner.Duration(), inner.Progress)
	return a
}

// StartWithTarget binds the action to target and the inner action to the
// forced target.
func (a *TargetedAction) StartWithTarget(target Target) {
	a.IntervalAction.StartWithTarget(target)
	a.inner.StartWithTarget(a.forced)
}

// Stop stops the inner action.
func (a *TargetedAction) Stop() {
	a.inner.Stop()
	a.IntervalAction.Stop()
}

// ForcedTarget returns the target the inner action runs on.
func (a *TargetedAction) ForcedTarget() Target {
	return a.forced
}

// RepeatForeverAction restarts a finite action every time it completes. It never
// reports done; remove it explicitly.
type RepeatForeverAction struct {
	BaseAction
	inner FiniteAction
}

// NewRepeatForever wraps inner.
func NewRepeatForever(inner FiniteAction) *RepeatForeverAction {
	return &RepeatForeverAction{inner: inner}
}

// StartWithTarget implements Action.
func (r *RepeatForeverAction) StartWithTarget(target Target) {
	r.BaseAction.StartWithTarget(target)
	r.inner.StartWithTarget(target)
}

// Step implements Action. Time past the end of a cycle carries into the next.
func (r *RepeatForeverAction) Step(dt float64) {
	r.inner.Step(dt)
	if r.inner.IsDone() {
		over := r.inner.Elapsed() - r.inner.Duration()
		r.inner.StartWithTarget(r.target)
		r.inner.Step(0)
		r.inner.Step(over)
	}
}

// IsDone implements Action. It is always false.
func (r *RepeatForeverAction) IsDone() bool {
	return false
}

// Stop implements Action.
func (r *RepeatForeverAction) Stop() {
	r.inner.Stop()
	r.BaseAction.Stop()
}

// Speed scales the dt its inner action receives. Unlike SetSpeed on an
// IntervalAction it works for any Action and can be changed while running.
type Speed struct {
	BaseAction
	inner Action
	rate  float64
}

// NewSpeed wraps inner with a dt multiplier.
func NewSpeed(inner Action, rate float64) *Speed {
	return &Speed{inner: inner, rate: rate}
}

// Rate returns the multiplier.
func (s *Speed) Rate() float64 {
	return s.rate
}

// SetRate changes the multiplier.
func (s *Speed) SetRate(rate float64) {
	s.rate = rate
}

// StartWithTarget implements Action.
func (s *Speed) StartWithTarget(target Target) {
	s.BaseAction.StartWithTarget(target)
	s.inner.StartWithTarget(target)
}

// Step implements Action.
func (s *Speed) Step(dt float64) {
	s.inner.Step(dt * s.rate)
}

// IsDone implements Action.
func (s *Speed) IsDone() bool {
	return s.inner.IsDone()
}

// Stop implements Action.
func (s *Speed) Stop() {
	s.inner.Stop()
	s.BaseAction.Stop()
}
