package parallax

import "testing"

func TestInjectClick(t *testing.T) {
	h := newTestHost(t)
	h.Driver().Mount()
	h.runFrames(1.0 / 60)

	var clicked *Entity
	h.engine.OnClick(func(ctx ClickContext) { clicked = ctx.Entity })

	h.InjectClick(100, 100)
	if len(h.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(h.injectQueue))
	}

	// Frame 1: move
	if !h.processInjectedInput() {
		t.Fatal("expected an injected event to be consumed")
	}
	if clicked != nil {
		t.Error("click should not fire on the move frame")
	}
	if p := h.engine.Pointer(); p.X != 100 || p.Y != 100 {
		t.Errorf("pointer = (%v,%v), want (100,100)", p.X, p.Y)
	}
	h.runFrames(1.0 / 60)

	// Frame 2: click
	h.processInjectedInput()
	if len(h.injectQueue) != 0 {
		t.Fatalf("expected 0 remaining events, got %d", len(h.injectQueue))
	}
	if clicked == nil || clicked.ID() != "a" {
		t.Errorf("clicked = %v, want a", clicked)
	}
	if h.processInjectedInput() {
		t.Error("empty queue should report no event")
	}
}

func TestInjectPath(t *testing.T) {
	h := newTestHost(t)
	h.InjectPath(0, 0, 100, 50, 5)
	if len(h.injectQueue) != 5 {
		t.Fatalf("expected 5 queued events, got %d", len(h.injectQueue))
	}
	first, last := h.injectQueue[0], h.injectQueue[4]
	if first.x != 0 || first.y != 0 || last.x != 100 || last.y != 50 {
		t.Errorf("endpoints = %+v, %+v", first, last)
	}
	if mid := h.injectQueue[2]; mid.x != 50 || mid.y != 25 {
		t.Errorf("midpoint = %+v, want (50,25)", mid)
	}

	for i := 0; i < 5; i++ {
		h.processInjectedInput()
	}
	if st := h.engine.Pointer(); st.TotalDeltaX != 100 || st.TotalDeltaY != 50 {
		t.Errorf("totals = (%v,%v), want (100,50)", st.TotalDeltaX, st.TotalDeltaY)
	}
}

func TestInjectPathMinimumFrames(t *testing.T) {
	h := newTestHost(t)
	h.InjectPath(0, 0, 10, 10, 1)
	if len(h.injectQueue) != 2 {
		t.Errorf("expected 2 queued events, got %d", len(h.injectQueue))
	}
}
