package tempo

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const fpsLogKey = "tempo.fps"

// SetFPSLogging logs the actual FPS and TPS along with engine counters every
// interval seconds of scheduler time. An interval of 0 stops logging; calling
// it again while logging only changes the interval.
func (d *Director) SetFPSLogging(interval float64) {
	if interval <= 0 {
		d.scheduler.Unschedule(d.handle, fpsLogKey)
		return
	}
	d.scheduler.Schedule(d.handle, fpsLogKey, d.logFPS, interval, RepeatForever, 0, false)
}

func (d *Director) logFPS(float64) {
	d.log.Info("fps",
		zap.Float64("fps", ebiten.ActualFPS()),
		zap.Float64("tps", ebiten.ActualTPS()),
		zap.Uint64("frames", d.frames),
		zap.Int("update_targets", d.scheduler.NumUpdateTargets()),
		zap.Int("timer_targets", d.scheduler.NumTimerTargets()),
		zap.Int("action_targets", d.actions.NumberOfTargets()))
}
