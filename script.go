package radial

import (
	"encoding/json"
	"fmt"
	"strings"
)

// gestureStep represents a single action in a gesture script.
type gestureStep struct {
	Action string   `json:"action"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	FromX  float64  `json:"fromX,omitempty"`
	FromY  float64  `json:"fromY,omitempty"`
	ToX    float64  `json:"toX,omitempty"`
	ToY    float64  `json:"toY,omitempty"`
	Frames int      `json:"frames,omitempty"`
	Mods   []string `json:"mods,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []gestureStep `json:"steps"`
}

// ScriptRunner replays a recorded gesture against a Sampler by sequencing
// injected input events across ticks. Attach to a Sampler via
// SetScriptRunner. Supported actions: "press", "move" (optionally with
// "mods"), "release", "click", "drag", "key_down", "key_up" (with "mods"
// naming the keys still held), "wait" for a number of frames, and "reset".
type ScriptRunner struct {
	steps     []gestureStep
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses a JSON gesture script and returns a ScriptRunner
// ready to be attached to a Sampler. Actions and modifier names are
// validated up front so a broken script fails at load time, not mid-replay.
func LoadGestureScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "move", "release", "click", "drag", "key_down", "key_up", "wait", "reset":
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
		if _, err := parseModifiers(st.Mods); err != nil {
			return nil, fmt.Errorf("parse gesture script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// parseModifiers converts modifier key names to a KeyModifiers bitmask.
// Recognized names: "shift", "ctrl"/"control", "alt"/"option",
// "meta"/"cmd"/"super".
func parseModifiers(names []string) (KeyModifiers, error) {
	var mods KeyModifiers
	for _, name := range names {
		switch strings.ToLower(name) {
		case "shift":
			mods |= ModShift
		case "ctrl", "control":
			mods |= ModCtrl
		case "alt", "option":
			mods |= ModAlt
		case "meta", "cmd", "super":
			mods |= ModMeta
		default:
			return 0, fmt.Errorf("unknown modifier %q", name)
		}
	}
	return mods, nil
}

// SetScriptRunner attaches a gesture script to the sampler. While the runner
// has steps remaining, Update feeds scripted input to the tracker and skips
// device polling entirely. Pass nil to detach.
func (s *Sampler) SetScriptRunner(runner *ScriptRunner) {
	s.runner = runner
}

// Done reports whether all steps in the script have executed and every
// injected event they produced has been consumed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick. Called from Sampler.Update.
func (r *ScriptRunner) step(s *Sampler) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	mods, _ := parseModifiers(st.Mods) // validated at load time

	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		if mods != 0 {
			s.InjectMoveModified(st.X, st.Y, mods)
		} else {
			s.InjectMove(st.X, st.Y)
		}
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "key_down":
		s.InjectKeyDown()
	case "key_up":
		s.InjectKeyUp(mods)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "reset":
		s.Reset()
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
