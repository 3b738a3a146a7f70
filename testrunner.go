package parallax

import (
	"encoding/json"
	"fmt"
)

// Script actions.
const (
	actionMove       = "move"
	actionPath       = "path"
	actionClick      = "click"
	actionWait       = "wait"
	actionScreenshot = "screenshot"
)

// testStep is one scripted action. Coordinates are surface-local pixels.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

func (st testStep) validate() error {
	switch st.Action {
	case actionMove, actionClick, actionScreenshot:
		return nil
	case actionPath:
		if st.Frames < 2 {
			return fmt.Errorf("path needs at least 2 frames, got %d", st.Frames)
		}
		return nil
	case actionWait:
		if st.Frames < 1 {
			return fmt.Errorf("wait needs at least 1 frame, got %d", st.Frames)
		}
		return nil
	}
	return fmt.Errorf("unknown action %q", st.Action)
}

// TestRunner plays a script of pointer moves, paths, clicks, waits and
// screenshots against a Host, one action per frame once injected input has
// drained. Attach with Host.SetTestRunner.
type TestRunner struct {
	steps []testStep
	next  int
	idle  int // frames left in the current wait
	done  bool
}

// LoadTestScript parses a JSON script of the form {"steps": [...]}. Every
// step is checked up front so a bad script fails before the window opens.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []testStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the host. The runner advances once
// per Update, before input is processed.
func (h *Host) SetTestRunner(runner *TestRunner) {
	h.testRunner = runner
}

// Done reports whether every step has run and its input has drained.
func (r *TestRunner) Done() bool {
	return r.done
}

// step is called once per frame.
func (r *TestRunner) step(h *Host) {
	if r.done || len(h.injectQueue) > 0 {
		return
	}
	if r.idle > 0 {
		r.idle--
		return
	}
	if r.next == len(r.steps) {
		r.done = true
		return
	}
	r.apply(h, r.steps[r.next])
	r.next++
	r.done = r.next == len(r.steps) && r.idle == 0 && len(h.injectQueue) == 0
}

func (r *TestRunner) apply(h *Host, st testStep) {
	switch st.Action {
	case actionMove:
		h.InjectMove(st.X, st.Y)
	case actionPath:
		h.InjectPath(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case actionClick:
		h.InjectClick(st.X, st.Y)
	case actionWait:
		r.idle = st.Frames - 1 // the current frame is the first
	case actionScreenshot:
		h.Screenshot(st.Label)
	}
}
