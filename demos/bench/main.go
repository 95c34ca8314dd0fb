// bench drives a Director headlessly with thousands of update targets,
// interval callbacks, and tweens that add and remove each other while the
// frame is being dispatched. A stress test for the scheduling core.
//
// Settings come from flags, then from the config file named by --config or
// the TEMPO_CONFIG environment variable (a .env file is read first).
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/phanxgames/tempo"
	"github.com/spf13/cobra"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

type options struct {
	config  string
	script  string
	targets int
	timers  int
	actions int
	frames  int
	dt      float64
	churn   float64
	seed    uint64
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "bench",
	Short: "Stress test the tempo scheduler and action manager.",
	Long: `Bench registers update targets, interval callbacks, and tween ` +
		`sequences, then ticks a Director for a fixed number of frames ` +
		`while callbacks churn registrations. It reports frame timings.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(opts)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&opts.config, "config", "", "config file (.toml, .yaml); defaults to $TEMPO_CONFIG")
	f.StringVar(&opts.script, "script", "", "JSON frame script to run instead of --frames")
	f.IntVar(&opts.targets, "targets", 5000, "per-frame update targets")
	f.IntVar(&opts.timers, "timers", 5000, "interval callbacks")
	f.IntVar(&opts.actions, "actions", 5000, "tween sequences")
	f.IntVar(&opts.frames, "frames", 600, "frames to tick")
	f.Float64Var(&opts.dt, "dt", 1.0/60, "seconds per frame")
	f.Float64Var(&opts.churn, "churn", 0.01, "chance per callback to unschedule and reschedule a peer")
	f.Uint64Var(&opts.seed, "seed", 1, "random seed")
}

func main() {
	_ = godotenv.Load() // .env is optional
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// agent is one benchmark target.
type agent struct {
	*tempo.Node
	vx, vy float64
}

func run(o options) error {
	cfg := tempo.DefaultConfig()
	if o.config == "" {
		o.config = os.Getenv("TEMPO_CONFIG")
	}
	if o.config != "" {
		var err error
		if cfg, err = tempo.LoadConfig(o.config); err != nil {
			return err
		}
	}

	log, err := tempo.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	d := tempo.NewDirector(cfg)
	d.SetLogger(log)
	s := d.Scheduler()
	rng := rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15))

	agents := make([]*agent, max(o.targets, o.timers, o.actions))
	for i := range agents {
		a := &agent{Node: tempo.NewNode(fmt.Sprintf("agent-%d", i))}
		a.vx, a.vy = rng.Float64()*2-1, rng.Float64()*2-1
		a.OnUpdate = func(dt float64) {
			a.X += a.vx * dt
			a.Y += a.vy * dt
		}
		agents[i] = a
	}

	for i := 0; i < o.targets; i++ {
		s.ScheduleUpdate(agents[i], rng.IntN(21)-10, false)
	}

	var fires int
	for i := 0; i < o.timers; i++ {
		a := agents[i]
		interval := 0.05 + rng.Float64()*0.5
		s.Schedule(a, "pulse", func(float64) {
			fires++
			if rng.Float64() >= o.churn {
				return
			}
			peer := agents[rng.IntN(len(agents))]
			s.Unschedule(peer, "pulse")
			s.Schedule(peer, "pulse", func(float64) { fires++ }, interval, tempo.RepeatForever, 0, false)
		}, interval, tempo.RepeatForever, rng.Float64(), false)
	}

	for i := 0; i < o.actions; i++ {
		a := agents[i]
		d.RunAction(a, tempo.NewRepeatForever(tempo.NewSequence(
			tempo.TweenPosition(rng.Float64()*640, rng.Float64()*480, 0.5+rng.Float64(), ease.InOutQuad),
			tempo.TweenAlpha(rng.Float64(), 0.25, ease.Linear),
			tempo.NewCallFunc(func(tempo.Target) {
				if rng.Float64() < o.churn {
					d.ActionManager().RemoveAllActionsFromTarget(a, false)
				}
			}),
		)))
	}

	log.Info("bench start",
		zap.Int("update_targets", s.NumUpdateTargets()),
		zap.Int("timer_targets", s.NumTimerTargets()),
		zap.Int("action_targets", d.ActionManager().NumberOfTargets()))

	start := time.Now()
	var worst time.Duration
	frames := 0
	tick := func() {
		t0 := time.Now()
		d.Tick(o.dt)
		worst = max(worst, time.Since(t0))
		frames++
	}

	if o.script != "" {
		data, err := os.ReadFile(o.script)
		if err != nil {
			return fmt.Errorf("read frame script: %w", err)
		}
		script, err := tempo.LoadFrameScript(data)
		if err != nil {
			return err
		}
		d.SetFrameScript(script)
		for !script.Done() {
			if err := d.Update(); err != nil {
				return err
			}
			frames++
		}
	} else {
		for range o.frames {
			tick()
		}
	}

	total := time.Since(start)
	log.Info("bench done",
		zap.Int("frames", frames),
		zap.Duration("total", total),
		zap.Duration("avg_frame", total/time.Duration(max(frames, 1))),
		zap.Duration("worst_frame", worst),
		zap.Int("timer_fires", fires),
		zap.Int("update_targets", s.NumUpdateTargets()),
		zap.Int("timer_targets", s.NumTimerTargets()),
		zap.Int("action_targets", d.ActionManager().NumberOfTargets()))
	return nil
}
