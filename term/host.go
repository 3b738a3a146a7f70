package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/parallax"
)

// DefaultInterval is the frame period used when Host is given none (~60 FPS).
const DefaultInterval = 16 * time.Millisecond

type frame struct {
	handle parallax.FrameHandle
	fn     func(dt float32)
}

// Host drives a parallax engine in a terminal. A ticker stands in for the
// display refresh; mouse events are translated to engine pixels and fed to
// the engine between ticks on the same goroutine.
type Host struct {
	screen   tcell.Screen
	engine   *parallax.Engine
	surface  *Surface
	driver   *parallax.Driver
	interval time.Duration

	next       parallax.FrameHandle
	pending    []frame
	buttonDown bool
}

// NewHost creates a host painting engine onto surface. interval <= 0 uses
// DefaultInterval.
func NewHost(screen tcell.Screen, engine *parallax.Engine, surface *Surface, interval time.Duration) *Host {
	if interval <= 0 {
		interval = DefaultInterval
	}
	h := &Host{screen: screen, engine: engine, surface: surface, interval: interval}
	h.driver = parallax.NewDriver(engine, h, surface)
	return h
}

// Driver returns the host's frame driver.
func (h *Host) Driver() *parallax.Driver {
	return h.driver
}

// RequestFrame implements parallax.Scheduler.
func (h *Host) RequestFrame(fn func(dt float32)) parallax.FrameHandle {
	h.next++
	h.pending = append(h.pending, frame{handle: h.next, fn: fn})
	return h.next
}

// CancelFrame implements parallax.Scheduler.
func (h *Host) CancelFrame(handle parallax.FrameHandle) {
	for i := range h.pending {
		if h.pending[i].handle == handle {
			h.pending = append(h.pending[:i], h.pending[i+1:]...)
			return
		}
	}
}

// Run mounts the driver and processes frames and input until Escape,
// Ctrl-C or 'q' is pressed. The screen must already be initialized.
func (h *Host) Run() error {
	h.screen.EnableMouse()
	h.driver.Mount()
	defer h.driver.Unmount()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	quit := make(chan struct{})
	defer close(quit)
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	dt := float32(h.interval.Seconds())
	for {
		select {
		case ev := <-eventChan:
			if !h.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.runFrames(dt)
		}
	}
}

func (h *Host) runFrames(dt float32) {
	due := h.pending
	h.pending = nil
	for _, f := range due {
		f.fn(dt)
	}
	h.screen.Show()
}

// handleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		p := h.surface.CellCenter(col, row)
		h.engine.PointerMove(p.X, p.Y)
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !h.buttonDown {
			h.engine.Click(p.X, p.Y)
		}
		h.buttonDown = pressed
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}
