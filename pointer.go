package parallax

// PointerState is the tracked pointer position plus the running sum of
// per-event deltas. TotalDeltaX/Y is never reset while mounted; it is the
// destination of the parallax offset easing.
type PointerState struct {
	X, Y         float64
	PrevX, PrevY float64
	TotalDeltaX  float64
	TotalDeltaY  float64
}

// PointerTracker accumulates pointer movement from raw move events. It is
// the only writer of its PointerState. Duplicate or stale coordinates are
// harmless: a repeated position contributes a zero delta.
type PointerTracker struct {
	state PointerState
	seen  bool
}

// Move records a pointer-move event at surface-local (x, y) and returns the
// delta it contributed. The first event after construction or Reset
// contributes a zero delta.
func (t *PointerTracker) Move(x, y float64) Point {
	if !t.seen {
		t.state.PrevX = x
		t.state.PrevY = y
		t.seen = true
	} else {
		t.state.PrevX = t.state.X
		t.state.PrevY = t.state.Y
	}
	t.state.X = x
	t.state.Y = y
	dx := x - t.state.PrevX
	dy := y - t.state.PrevY
	t.state.TotalDeltaX += dx
	t.state.TotalDeltaY += dy
	return Point{dx, dy}
}

// State returns a copy of the tracked state.
func (t *PointerTracker) State() PointerState {
	return t.state
}

// Seen reports whether any move event has been recorded.
func (t *PointerTracker) Seen() bool {
	return t.seen
}

// Position returns the last observed pointer position.
func (t *PointerTracker) Position() Point {
	return Point{t.state.X, t.state.Y}
}

// Total returns the accumulated pointer displacement.
func (t *PointerTracker) Total() Point {
	return Point{t.state.TotalDeltaX, t.state.TotalDeltaY}
}

// Reset forgets all tracked state, as on a fresh mount.
func (t *PointerTracker) Reset() {
	*t = PointerTracker{}
}
