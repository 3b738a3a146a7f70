package parallax

// syntheticPointerEvent represents a single injected pointer event in
// surface-local coordinates (matching what a screenshot shows).
type syntheticPointerEvent struct {
	x, y  float64
	click bool
}

// InjectMove queues a pointer move to (x, y). The event is consumed on the
// next Update, in place of real mouse input.
func (h *Host) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a move to (x, y) followed by a click there. Consumes
// two frames, so the engine paints the hovered state before the click
// resolves.
func (h *Host) InjectClick(x, y float64) {
	h.InjectMove(x, y)
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: x, y: y, click: true})
}

// InjectPath queues moves linearly interpolated from (fromX, fromY) to
// (toX, toY), one per frame over the given number of frames (minimum 2).
func (h *Host) InjectPath(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		h.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// processInjectedInput pops one event from the inject queue and feeds it to
// the engine. Returns true if an event was consumed (real mouse input should
// be skipped).
func (h *Host) processInjectedInput() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	if evt.click {
		h.engine.Click(evt.x, evt.y)
	} else {
		h.engine.PointerMove(evt.x, evt.y)
	}
	return true
}
