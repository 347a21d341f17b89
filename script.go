package dragkit

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a drag script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// dragScript is the top-level JSON structure for a script.
type dragScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected pointer events across frames from a
// JSON script, for automated interaction testing. Attach to a Stage via
// SetScript; the runner advances one step per frame once pending
// injections have drained.
//
// Supported actions: "press", "move", "release" (x, y), "drag" (fromX,
// fromY, toX, toY, frames), "cancel", and "wait" (frames).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON drag script and returns a ScriptRunner ready
// to be attached to a Stage via SetScript.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script dragScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse drag script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse drag script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScript attaches a ScriptRunner to the stage. The runner steps at
// the start of each frame, before input processing.
func (s *Stage) SetScript(runner *ScriptRunner) {
	s.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Stage.step.
func (r *ScriptRunner) step(s *Stage) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
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

	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "cancel":
		s.CancelPointer(0)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
