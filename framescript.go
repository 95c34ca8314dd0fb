package tempo

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// scriptStep represents a single action in a frame script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Value  float64 `json:"value,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// frameScript is the top-level JSON structure for a frame script.
type frameScript struct {
	Steps []scriptStep `json:"steps"`
}

// Snapshot records engine counters at a "snapshot" step.
type Snapshot struct {
	Label         string
	Frame         uint64
	UpdateTargets int
	TimerTargets  int
	ActionTargets int
}

// FrameScript sequences pause, resume, time-scale and snapshot steps across
// frames for deterministic headless runs. Attach to a Director via
// SetFrameScript or drive it with RunScript.
//
//	{"steps": [
//		{"action": "wait", "frames": 30},
//		{"action": "timescale", "value": 0.5},
//		{"action": "snapshot", "label": "slow"},
//		{"action": "pause"},
//		{"action": "wait", "frames": 10},
//		{"action": "resume"}
//	]}
type FrameScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	snapshots []Snapshot
}

// LoadFrameScript parses a JSON frame script.
func LoadFrameScript(jsonData []byte) (*FrameScript, error) {
	var script frameScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse frame script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse frame script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "pause", "resume", "snapshot":
		case "timescale":
			if st.Value < 0 {
				return nil, fmt.Errorf("parse frame script: step %d: negative time scale %v", i, st.Value)
			}
		case "wait":
			if st.Frames < 0 {
				return nil, fmt.Errorf("parse frame script: step %d: negative frame count %d", i, st.Frames)
			}
		default:
			return nil, fmt.Errorf("parse frame script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &FrameScript{steps: script.Steps}, nil
}

// SetFrameScript attaches a script. Its step method is called from
// Director.Update before the tick each frame.
func (d *Director) SetFrameScript(script *FrameScript) {
	d.script = script
}

// RunScript drives d headlessly with a fixed dt until script is done and
// returns the number of frames ticked.
func (d *Director) RunScript(script *FrameScript, dt float64) int {
	frames := 0
	for !script.Done() {
		script.step(d)
		d.Tick(dt)
		frames++
	}
	return frames
}

// Done reports whether all steps have been executed.
func (r *FrameScript) Done() bool {
	return r.done
}

// Snapshots returns the counters recorded by "snapshot" steps so far.
func (r *FrameScript) Snapshots() []Snapshot {
	return r.snapshots
}

// step advances the script by one frame.
func (r *FrameScript) step(d *Director) {
	if r.done {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		if r.waitCount == 0 && r.cursor >= len(r.steps) {
			r.done = true
		}
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "pause":
		d.Pause()
	case "resume":
		d.Resume()
	case "timescale":
		d.scheduler.SetTimeScale(st.Value)
	case "snapshot":
		snap := Snapshot{
			Label:         st.Label,
			Frame:         d.frames,
			UpdateTargets: d.scheduler.NumUpdateTargets(),
			TimerTargets:  d.scheduler.NumTimerTargets(),
			ActionTargets: d.actions.NumberOfTargets(),
		}
		r.snapshots = append(r.snapshots, snap)
		d.log.Info("snapshot",
			zap.String("label", snap.Label),
			zap.Uint64("frame", snap.Frame),
			zap.Int("update_targets", snap.UpdateTargets),
			zap.Int("timer_targets", snap.TimerTargets),
			zap.Int("action_targets", snap.ActionTargets))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
