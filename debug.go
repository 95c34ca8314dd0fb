package tempo

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-frame timing and dispatch counts.
// Only populated when Director.debug is true.
type debugStats struct {
	tickTime      time.Duration
	updates       int
	timers        int
	actionSteps   int
	updateTargets int
	timerTargets  int
	actionTargets int
}

// debugLog writes timing and dispatch stats at debug level.
func (d *Director) debugLog(stats debugStats) {
	if !d.debug {
		return
	}
	d.log.Debug("frame",
		zap.Uint64("frame", d.frames),
		zap.Duration("tick", stats.tickTime),
		zap.Int("updates", stats.updates),
		zap.Int("timers", stats.timers),
		zap.Int("action_steps", stats.actionSteps),
		zap.Int("update_targets", stats.updateTargets),
		zap.Int("timer_targets", stats.timerTargets),
		zap.Int("action_targets", stats.actionTargets))
}

// globalDebug mirrors the most recently set Director debug flag so that
// managers and schedulers (which lack a Director pointer) can check it
// cheaply. Only valid with a single Director; multiple Directors with
// differing debug modes reflect whichever called SetDebugMode last.
var globalDebug bool

// debugCheckDisposed panics with a descriptive message when an action is
// added to a disposed target. In release mode callers skip this entirely.
func debugCheckDisposed(target Target, op string) {
	if d, ok := target.(disposable); ok && d.IsDisposed() {
		panic(fmt.Sprintf("tempo debug: %s on disposed target (ID was %d)", op, target.TargetID()))
	}
}

// debugCheckActionCount warns if a target has more than 1000 running actions,
// which almost always means an action is re-added every frame.
const debugMaxActionCount = 1000

func debugCheckActionCount(log *zap.Logger, e *actionElement) {
	if len(e.actions) > debugMaxActionCount {
		log.Warn("target has too many running actions",
			zap.Uint32("target", uint32(e.target.TargetID())),
			zap.Int("actions", len(e.actions)),
			zap.Int("threshold", debugMaxActionCount))
	}
}

// debugCheckTimerCount warns if a target has more than 1000 callbacks.
const debugMaxTimerCount = 1000

func debugCheckTimerCount(log *zap.Logger, elt *timerElement) {
	if len(elt.timers) > debugMaxTimerCount {
		log.Warn("target has too many scheduled callbacks",
			zap.Uint32("target", uint32(elt.target.TargetID())),
			zap.Int("callbacks", len(elt.timers)),
			zap.Int("threshold", debugMaxTimerCount))
	}
}
