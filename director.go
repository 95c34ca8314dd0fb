package tempo

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Director is the top-level object that owns a Scheduler and the
// ActionManager it drives, and turns host frames into Scheduler updates.
// It implements ebiten.Game, so it can be passed to Run or ebiten.RunGame
// directly; headless hosts call Tick instead.
type Director struct {
	scheduler *Scheduler
	actions   *ActionManager
	log       *zap.Logger
	debug     bool

	// handle owns the Director's own timers (FPS logging).
	handle Handle

	maxDelta      float64
	paused        bool
	nextDeltaZero bool
	frames        uint64

	// Host hooks
	drawFunc   func(screen *ebiten.Image)
	updateFunc func() error
	script     *FrameScript

	layoutW, layoutH int
}

// NewDirector creates a Director from cfg. The ActionManager is registered at
// PrioritySystem so actions step before any user update in the same frame.
func NewDirector(cfg Config) *Director {
	d := &Director{
		scheduler: NewScheduler(),
		actions:   NewActionManager(),
		log:       zap.NewNop(),
		handle:    NewHandle(),
		maxDelta:  cfg.MaxDelta,
	}
	if cfg.TimeScale > 0 {
		d.scheduler.SetTimeScale(cfg.TimeScale)
	}
	d.scheduler.ScheduleUpdate(d.actions, PrioritySystem, false)
	if cfg.Debug {
		d.SetDebugMode(true)
	}
	if cfg.FPSLogInterval > 0 {
		d.SetFPSLogging(cfg.FPSLogInterval)
	}
	return d
}

// Scheduler returns the Director's scheduler.
func (d *Director) Scheduler() *Scheduler {
	return d.scheduler
}

// ActionManager returns the Director's action manager.
func (d *Director) ActionManager() *ActionManager {
	return d.actions
}

// SetLogger sets the logger of the Director, its Scheduler and its
// ActionManager. Nil restores the no-op logger.
func (d *Director) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	d.log = log
	d.scheduler.SetLogger(log.Named("scheduler"))
	d.actions.SetLogger(log.Named("actions"))
}

// SetDebugMode enables or disables debug mode. When enabled, adding actions
// to disposed targets panics, oversized action and callback lists are
// reported, and per-frame stats are logged at debug level.
func (d *Director) SetDebugMode(enabled bool) {
	d.debug = enabled
	globalDebug = enabled
}

// RunAction adds action to the Director's ActionManager for target. The
// action starts paused when target is paused in the Scheduler.
func (d *Director) RunAction(target Target, action Action) Action {
	d.actions.AddAction(action, target, d.scheduler.IsTargetPaused(target))
	return action
}

// SetMaxDelta caps a single frame's dt. Zero disables the cap.
func (d *Director) SetMaxDelta(maxDelta float64) {
	d.maxDelta = max(maxDelta, 0)
}

// SetNextDeltaTimeZero makes the next Tick use a dt of 0, typically after
// loading a level so the load time is not replayed.
func (d *Director) SetNextDeltaTimeZero(zero bool) {
	d.nextDeltaZero = zero
}

// Pause stops dispatching. Frames still count.
func (d *Director) Pause() {
	d.paused = true
}

// Resume restarts dispatching. The first frame after resuming uses a dt of
// 0 so the paused time is not replayed.
func (d *Director) Resume() {
	if !d.paused {
		return
	}
	d.paused = false
	d.nextDeltaZero = true
}

// IsPaused reports whether the Director is paused.
func (d *Director) IsPaused() bool {
	return d.paused
}

// Frames returns the number of ticks since creation, paused ones included.
func (d *Director) Frames() uint64 {
	return d.frames
}

// Reset removes every action and every scheduled callback and update, then
// registers the ActionManager again.
func (d *Director) Reset() {
	d.actions.RemoveAllActions()
	d.scheduler.UnscheduleAll()
	d.scheduler.ScheduleUpdate(d.actions, PrioritySystem, false)
	d.nextDeltaZero = true
}

// Tick advances the Director by one frame of dt seconds. Negative dt counts
// as 0 and dt above the configured maximum is capped.
func (d *Director) Tick(dt float64) {
	if d.nextDeltaZero {
		dt = 0
		d.nextDeltaZero = false
	}
	if dt < 0 {
		dt = 0
	}
	if d.maxDelta > 0 && dt > d.maxDelta {
		dt = d.maxDelta
	}
	d.frames++
	if d.paused {
		return
	}

	var t0 time.Time
	if d.debug {
		t0 = time.Now()
	}

	d.scheduler.Update(dt)

	if d.debug {
		d.debugLog(debugStats{
			tickTime:      time.Since(t0),
			updates:       d.scheduler.stats.updates,
			timers:        d.scheduler.stats.timers,
			actionSteps:   d.actions.steps,
			updateTargets: d.scheduler.NumUpdateTargets(),
			timerTargets:  d.scheduler.NumTimerTargets(),
			actionTargets: d.actions.NumberOfTargets(),
		})
	}
}

// --- ebiten.Game ---

// Update implements ebiten.Game. It advances an attached frame script, ticks
// by one fixed step of 1/TPS seconds and then calls the update hook.
func (d *Director) Update() error {
	if d.script != nil {
		d.script.step(d)
	}
	d.Tick(1.0 / float64(ebiten.TPS()))
	if d.updateFunc != nil {
		return d.updateFunc()
	}
	return nil
}

// Draw implements ebiten.Game by calling the draw hook, if any.
func (d *Director) Draw(screen *ebiten.Image) {
	if d.drawFunc != nil {
		d.drawFunc(screen)
	}
}

// Layout implements ebiten.Game. It returns the size given to Run, or the
// outside size when none was given.
func (d *Director) Layout(outsideWidth, outsideHeight int) (int, int) {
	if d.layoutW > 0 && d.layoutH > 0 {
		return d.layoutW, d.layoutH
	}
	return outsideWidth, outsideHeight
}

// SetDrawFunc sets the function called from Draw.
func (d *Director) SetDrawFunc(fn func(screen *ebiten.Image)) {
	d.drawFunc = fn
}

// SetUpdateFunc sets the function called from Update after the tick.
// Returning an error (for example ebiten.Termination) stops Run.
func (d *Director) SetUpdateFunc(fn func() error) {
	d.updateFunc = fn
}
