package parallax

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "move", "x": 30, "y": 40},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "path", "fromX": 0, "fromY": 0, "toX": 50, "toY": 50, "frames": 4}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].Action != "move" || runner.steps[1].X != 30 || runner.steps[1].Y != 40 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[4].ToX != 50 || runner.steps[4].Frames != 4 {
		t.Error("step 4 mismatch")
	}
}

func TestLoadTestScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "drag"}]}`},
		{"path without frames", `{"steps": [{"action": "path", "toX": 10, "toY": 10}]}`},
		{"single-frame path", `{"steps": [{"action": "path", "toX": 10, "frames": 1}]}`},
		{"zero wait", `{"steps": [{"action": "wait"}]}`},
	}
	for _, tt := range tests {
		if _, err := LoadTestScript([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestRunnerStep_Click(t *testing.T) {
	h := newTestHost(t)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 100, "y": 100}]}`))
	if err != nil {
		t.Fatal(err)
	}
	h.SetTestRunner(runner)

	runner.step(h)
	if len(h.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(h.injectQueue))
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	h.processInjectedInput()
	h.processInjectedInput()

	runner.step(h)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	h := newTestHost(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1 starts the wait; frames 2 and 3 count it down.
	for i := 0; i < 3; i++ {
		runner.step(h)
		if runner.Done() {
			t.Fatalf("done during wait at frame %d", i+1)
		}
	}

	// Frame 4: screenshot step, runner finishes.
	runner.step(h)
	if !runner.Done() {
		t.Error("runner should be done after screenshot step")
	}
	if len(h.screenshotQueue) != 1 || h.screenshotQueue[0] != "done" {
		t.Errorf("expected screenshot 'done', got %v", h.screenshotQueue)
	}
}

func TestRunnerStep_Path(t *testing.T) {
	h := newTestHost(t)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "path", "fromX": 10, "fromY": 10, "toX": 200, "toY": 200, "frames": 4}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(h)
	if len(h.injectQueue) != 4 {
		t.Fatalf("expected 4 queued events for path, got %d", len(h.injectQueue))
	}
}

func TestRunnerDone(t *testing.T) {
	h := newTestHost(t)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "only"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(h)
	if !runner.Done() {
		t.Error("single screenshot step should finish the runner")
	}
	runner.step(h)
	if len(h.screenshotQueue) != 1 {
		t.Errorf("done runner queued more screenshots: %v", h.screenshotQueue)
	}
}
