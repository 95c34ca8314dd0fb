package tempo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewDirectorRegistersActionManager(t *testing.T) {
	d := NewDirector(DefaultConfig())
	require.Equal(t, 1, d.Scheduler().NumUpdateTargets())
	require.NotNil(t, d.ActionManager())
	require.Equal(t, 1.0, d.Scheduler().TimeScale())
}

func TestDirectorActionsRunBeforeUserUpdates(t *testing.T) {
	d := NewDirector(DefaultConfig())
	node := NewNode("hero")
	var seen []float64
	node.OnUpdate = func(float64) { seen = append(seen, node.X) }
	d.Scheduler().ScheduleUpdate(node, PriorityNonSystemMin, false)

	d.RunAction(node, TweenPosition(10, 0, 0.2, ease.Linear))
	d.Tick(0.1) // baseline
	d.Tick(0.1)
	d.Tick(0.1)

	require.Len(t, seen, 3)
	require.InDelta(t, 5, seen[1], 0.01, "user update sees this frame's action step")
	require.Equal(t, 10.0, seen[2])
	require.Equal(t, 0, d.ActionManager().NumberOfTargets())
}

func TestDirectorRunActionOnPausedTarget(t *testing.T) {
	d := NewDirector(DefaultConfig())
	node := NewNode("n")
	d.Scheduler().ScheduleUpdate(node, 0, true)

	d.RunAction(node, NewDelay(1))
	require.True(t, d.ActionManager().IsTargetPaused(node))
}

func TestDirectorClampsDelta(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDelta = 0.25
	d := NewDirector(cfg)
	var got float64
	d.Scheduler().ScheduleUpdate(&dtRecorder{Handle: NewHandle(), got: &got}, 0, false)

	d.Tick(1)
	require.Equal(t, 0.25, got)
	d.Tick(-1)
	require.Equal(t, 0.0, got)

	d.SetMaxDelta(0)
	d.Tick(3)
	require.Equal(t, 3.0, got)
}

func TestDirectorTimeScaleFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeScale = 2
	cfg.MaxDelta = 0
	d := NewDirector(cfg)
	var got float64
	d.Scheduler().ScheduleUpdate(&dtRecorder{Handle: NewHandle(), got: &got}, 0, false)

	d.Tick(0.1)
	require.InDelta(t, 0.2, got, 1e-12)
}

func TestDirectorPauseResume(t *testing.T) {
	d := NewDirector(DefaultConfig())
	r := newRecorder("r", nil)
	var got float64
	d.Scheduler().ScheduleUpdate(r, 0, false)
	d.Scheduler().ScheduleUpdate(&dtRecorder{Handle: NewHandle(), got: &got}, 1, false)

	d.Pause()
	require.True(t, d.IsPaused())
	d.Tick(0.1)
	d.Tick(0.1)
	require.Equal(t, 0, r.calls)
	require.Equal(t, uint64(2), d.Frames())

	d.Resume()
	require.False(t, d.IsPaused())
	d.Tick(0.1)
	require.Equal(t, 1, r.calls)
	require.Equal(t, 0.0, got, "first frame after resume has zero dt")

	d.Tick(0.1)
	require.Equal(t, 0.1, got)
}

func TestDirectorNextDeltaTimeZero(t *testing.T) {
	d := NewDirector(DefaultConfig())
	var got float64
	d.Scheduler().ScheduleUpdate(&dtRecorder{Handle: NewHandle(), got: &got}, 0, false)

	d.SetNextDeltaTimeZero(true)
	d.Tick(0.2)
	require.Equal(t, 0.0, got)
	d.Tick(0.2)
	require.Equal(t, 0.2, got)
}

func TestDirectorReset(t *testing.T) {
	d := NewDirector(DefaultConfig())
	node := NewNode("n")
	d.Scheduler().ScheduleUpdate(node, 0, false)
	d.Scheduler().Schedule(node, "k", func(float64) {}, 1, RepeatForever, 0, false)
	d.RunAction(node, NewDelay(10))

	d.Reset()
	require.Equal(t, 1, d.Scheduler().NumUpdateTargets())
	require.Equal(t, 0, d.Scheduler().NumTimerTargets())
	require.Equal(t, 0, d.ActionManager().NumberOfTargets())

	d.RunAction(node, TweenPosition(4, 0, 0.1, ease.Linear))
	d.Tick(1)
	d.Tick(1)
	require.Equal(t, 4.0, node.X)
}

func TestDirectorEbitenHooks(t *testing.T) {
	d := NewDirector(DefaultConfig())
	var got float64
	d.Scheduler().ScheduleUpdate(&dtRecorder{Handle: NewHandle(), got: &got}, 0, false)
	stop := errors.New("stop")
	d.SetUpdateFunc(func() error { return stop })

	err := d.Update()
	require.ErrorIs(t, err, stop)
	require.InDelta(t, 1.0/60, got, 1e-9)

	w, h := d.Layout(800, 600)
	require.Equal(t, []int{800, 600}, []int{w, h})
	d.layoutW, d.layoutH = 320, 240
	w, h = d.Layout(800, 600)
	require.Equal(t, []int{320, 240}, []int{w, h})
}

func TestDirectorFPSLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	cfg := DefaultConfig()
	cfg.FPSLogInterval = 1
	d := NewDirector(cfg)
	d.SetLogger(zap.New(core))
	require.True(t, d.Scheduler().IsScheduled(d.handle, fpsLogKey))

	d.Tick(0)
	d.Tick(0.25)
	d.Tick(0.25)
	d.Tick(0.25)
	d.Tick(0.25)
	require.Equal(t, 1, logs.FilterMessage("fps").Len())

	d.SetFPSLogging(0)
	require.False(t, d.Scheduler().IsScheduled(d.handle, fpsLogKey))
}

func TestDirectorDebugStats(t *testing.T) {
	defer func() { globalDebug = false }()
	core, logs := observer.New(zapcore.DebugLevel)
	d := NewDirector(DefaultConfig())
	d.SetLogger(zap.New(core))
	d.SetDebugMode(true)

	d.RunAction(NewNode("n"), NewDelay(1))
	d.Tick(0.1)

	entries := logs.FilterMessage("frame").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.EqualValues(t, 1, fields["action_steps"])
	require.EqualValues(t, 1, fields["action_targets"])
	require.EqualValues(t, 1, fields["updates"])
}
