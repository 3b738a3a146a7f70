package parallax

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool

	// ClearColor fills the screen before each frame.
	ClearColor Color

	// ScreenshotDir receives PNGs queued with Host.Screenshot.
	// Defaults to "screenshots".
	ScreenshotDir string
}

// Host adapts an Engine to Ebitengine. It implements ebiten.Game and acts
// as the frame Scheduler: each Draw runs the frame callbacks requested
// during the previous frame. Pointer input is read in Update and fed to the
// engine between frames.
type Host struct {
	engine  *Engine
	driver  *Driver
	surface *EbitenSurface
	cfg     RunConfig

	next     FrameHandle
	pending  []scheduledFrame
	lastDraw time.Time

	cursorSeen bool
	lastCursor Point
	hoverShape ebiten.CursorShapeType

	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string
	fps             *fpsOverlay
}

// NewHost creates a host for engine. The host's driver is idle until Mount.
func NewHost(engine *Engine, cfg RunConfig) *Host {
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	h := &Host{
		engine:     engine,
		surface:    &EbitenSurface{ClearColor: cfg.ClearColor},
		cfg:        cfg,
		hoverShape: ebiten.CursorShapeDefault,
	}
	h.driver = NewDriver(engine, h, h.surface)
	if cfg.ShowFPS {
		h.fps = newFPSOverlay()
	}
	return h
}

// Driver returns the host's frame driver.
func (h *Host) Driver() *Driver {
	return h.driver
}

// RequestFrame implements Scheduler.
func (h *Host) RequestFrame(fn func(dt float32)) FrameHandle {
	h.next++
	h.pending = append(h.pending, scheduledFrame{handle: h.next, fn: fn})
	return h.next
}

// CancelFrame implements Scheduler.
func (h *Host) CancelFrame(handle FrameHandle) {
	h.pending = removeFrame(h.pending, handle)
}

// Update reads pointer input and advances the test runner.
func (h *Host) Update() error {
	if h.testRunner != nil {
		h.testRunner.step(h)
	}
	if !h.processInjectedInput() {
		h.processPointer()
	}
	h.updateCursorShape()
	return nil
}

// Draw runs the due frame callbacks against screen.
func (h *Host) Draw(screen *ebiten.Image) {
	h.surface.Bind(screen)
	dt := h.frameDT(time.Now())
	h.runFrames(dt)
	if h.fps != nil {
		h.fps.update(float64(dt))
		h.fps.draw(screen)
	}
	h.flushScreenshots(screen)
}

// Layout implements ebiten.Game with a fixed logical size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.cfg.Width > 0 && h.cfg.Height > 0 {
		return h.cfg.Width, h.cfg.Height
	}
	return outsideWidth, outsideHeight
}

// Frame time bounds. Draw runs once per display refresh, so dt is measured
// between Draw calls rather than derived from the tick rate.
const (
	defaultFrameDT = float32(1.0 / 60)
	maxFrameDT     = float32(0.25)
)

// frameDT returns the seconds elapsed since the previous Draw, clamped to
// (0, maxFrameDT]. The first frame uses defaultFrameDT.
func (h *Host) frameDT(now time.Time) float32 {
	prev := h.lastDraw
	h.lastDraw = now
	if prev.IsZero() {
		return defaultFrameDT
	}
	dt := float32(now.Sub(prev).Seconds())
	switch {
	case dt <= 0:
		return defaultFrameDT
	case dt > maxFrameDT:
		return maxFrameDT
	}
	return dt
}

func (h *Host) runFrames(dt float32) {
	due := h.pending
	h.pending = nil
	for _, f := range due {
		f.fn(dt)
	}
}

// processPointer forwards real mouse movement and left clicks.
func (h *Host) processPointer() {
	mx, my := ebiten.CursorPosition()
	p := Point{float64(mx), float64(my)}
	if !h.cursorSeen || p != h.lastCursor {
		h.engine.PointerMove(p.X, p.Y)
		h.lastCursor = p
		h.cursorSeen = true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.engine.Click(p.X, p.Y)
	}
}

// updateCursorShape shows a pointer cursor while an entity is hovered,
// since the canvas has no per-object cursor of its own.
func (h *Host) updateCursorShape() {
	shape := ebiten.CursorShapeDefault
	if _, ok := h.engine.Hovered(); ok {
		shape = ebiten.CursorShapePointer
	}
	if shape != h.hoverShape {
		ebiten.SetCursorShape(shape)
		h.hoverShape = shape
	}
}

// Run opens a window and drives engine until the window closes. The driver
// is mounted for the lifetime of the window and unmounted on return.
func Run(engine *Engine, cfg RunConfig) error {
	h := NewHost(engine, cfg)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	h.driver.Mount()
	defer h.driver.Unmount()
	return ebiten.RunGame(h)
}
