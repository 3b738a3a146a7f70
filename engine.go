package parallax

import (
	"fmt"
	"time"
)

// EntityStore is the interface for optional ECS integration.
// When set on an Engine, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	EntityID uint32
	ID       string
	X, Y     float64
}

// Loader starts loading the asset behind ref and returns immediately. The
// returned Asset flips to ready (or failed) later, possibly from another
// goroutine.
type Loader interface {
	Load(ref string) Asset
}

// Frame is the per-tick context handed to Engine.Tick. Everything a tick
// touches besides the engine's own state travels through it.
type Frame struct {
	Surface Surface
	DT      float32 // seconds since the previous frame
	Number  uint64
}

// Engine animates a set of entities in response to pointer movement and
// resolves clicks against their animated bounds.
//
// Single-writer discipline: PointerMove writes only the pointer tracker;
// Tick is the only writer of entity geometry and animation state; Click and
// Hovered only read. None of the methods are safe for concurrent use.
type Engine struct {
	cfg      Config
	easing   Easing
	entities []*Entity // paint order as of the last tick
	byID     map[string]*Entity

	pointer PointerTracker
	offsetX EasingState
	offsetY EasingState
	hovered *Entity

	handlers handlerRegistry
	store    EntityStore
	hitBuf   []*Entity
	debug    bool
	frames   uint64
}

// NewEngine validates cfg and builds the entities of its layout. Fractional
// layouts are resolved against a surface of surfaceW×surfaceH pixels. loader
// may be nil when the layout contains no image entries.
func NewEngine(cfg Config, surfaceW, surfaceH float64, loader Loader) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	easing, err := cfg.easing()
	if err != nil {
		return nil, err
	}
	cfg.Entities = append([]LayoutEntry(nil), cfg.Entities...)
	e := &Engine{
		cfg:    cfg,
		easing: easing,
		byID:   make(map[string]*Entity, len(cfg.Entities)),
	}
	for _, le := range cfg.Entities {
		center, w, h := le.resolve(surfaceW, surfaceH)
		var ent *Entity
		if le.Asset != "" {
			if loader == nil {
				return nil, fmt.Errorf("%w: entry %q needs an asset loader", ErrInvalidLayout, le.ID)
			}
			ent, err = NewImageEntity(le.ID, center, w, h, loader.Load(le.Asset))
		} else {
			c := ColorWhite
			if le.Color != "" {
				c, _ = ParseColor(le.Color) // checked by Validate
			}
			ent, err = NewRectEntity(le.ID, center, w, h, c)
		}
		if err != nil {
			return nil, err
		}
		ent.SetDepth(le.Depth)
		if err := e.Add(ent); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Add registers an entity. Entity ids are never reused within an engine.
func (e *Engine) Add(ent *Entity) error {
	if _, dup := e.byID[ent.id]; dup {
		return fmt.Errorf("%w: duplicate id %q", ErrInvalidLayout, ent.id)
	}
	ent.proximity = EasingState{Value: e.cfg.CutoffDistance}
	if ent.asset == nil {
		ent.state = StateVisible
		ent.opacity = EasingState{Value: 1}
	} else {
		ent.state = StateNotLoaded
		ent.opacity = EasingState{}
	}
	e.byID[ent.id] = ent
	e.entities = append(e.entities, ent)
	return nil
}

// Config returns a copy of the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Easing returns the step function shared by every animated value.
func (e *Engine) Easing() Easing {
	return e.easing
}

// Entities returns the entities in the paint order of the last tick
// (farthest first). The returned slice MUST NOT be mutated.
func (e *Engine) Entities() []*Entity {
	return e.entities
}

// Entity looks up an entity by id.
func (e *Engine) Entity(id string) (*Entity, bool) {
	ent, ok := e.byID[id]
	return ent, ok
}

// Pointer returns the tracked pointer state.
func (e *Engine) Pointer() PointerState {
	return e.pointer.State()
}

// Offset returns the parallax translation applied to the last painted frame.
func (e *Engine) Offset() Point {
	return Point{e.offsetX.Value, e.offsetY.Value}
}

// Frames returns the number of ticks run so far.
func (e *Engine) Frames() uint64 {
	return e.frames
}

// SetEntityStore sets the optional ECS bridge.
func (e *Engine) SetEntityStore(store EntityStore) {
	e.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing stats and asset failures are logged to stderr, and a frame
// callback firing after unmount panics.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// worldPointer returns the pointer with the parallax translation removed,
// which is the space entity bounds live in.
func (e *Engine) worldPointer() (Point, bool) {
	if !e.pointer.Seen() {
		return Point{}, false
	}
	return e.pointer.Position().Sub(e.Offset()), true
}

// mount prepares the engine for a fresh Running phase: the pointer, the
// parallax offset and every entity's proximity start from rest. A hover
// left over from the previous phase is closed with a leave event. Loading
// progress is kept.
func (e *Engine) mount() {
	if e.hovered != nil {
		p := e.pointer.Position()
		e.emitInteractionEvent(EventPointerLeave, e.hovered, p.X, p.Y)
		e.hovered = nil
	}
	e.pointer.Reset()
	e.offsetX = EasingState{}
	e.offsetY = EasingState{}
	for _, ent := range e.entities {
		ent.proximity = EasingState{Value: e.cfg.CutoffDistance}
		ent.factor = 0
		if ent.depth != 0 {
			ent.center = ent.home
		}
		ent.bounds = ent.computeBounds()
	}
}

// Tick advances every animated value one frame, re-sorts the paint order and
// paints the frame onto f.Surface.
func (e *Engine) Tick(f Frame) {
	var stats frameStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	e.frames++
	e.advanceLoading(f.DT)

	total := e.pointer.Total()
	k := e.cfg.ParallaxCoefficient
	e.easing.Step(&e.offsetX, total.X*k, f.DT)
	e.easing.Step(&e.offsetY, total.Y*k, f.DT)
	offset := e.Offset()

	world, hasPointer := e.worldPointer()
	cutoff := e.cfg.CutoffDistance
	for _, ent := range e.entities {
		if ent.depth != 0 {
			ent.center = ent.home.Add(Point{offset.X * ent.depth, offset.Y * ent.depth})
		}
		dest := cutoff
		if hasPointer {
			dest = Distance(world, ent.center)
		}
		e.easing.Step(&ent.proximity, dest, f.DT)
		ent.factor = Falloff(ent.proximity.Value, cutoff)
		ent.bounds = ent.computeBounds()
	}

	if e.debug {
		stats.advanceTime = time.Since(t0)
		t0 = time.Now()
	}

	// Without a pointer the previous order stands.
	if hasPointer {
		SortPaintOrder(e.entities, world)
	}

	if e.debug {
		stats.sortTime = time.Since(t0)
		t0 = time.Now()
	}

	if f.Surface != nil {
		stats.commandCount = e.paint(f.Surface, offset)
	}
	e.updateHover()

	if e.debug {
		stats.paintTime = time.Since(t0)
		stats.entityCount = len(e.entities)
		e.debugLog(stats)
	}
}

// advanceLoading moves each entity at most one step through the loading
// state machine, polling its asset.
func (e *Engine) advanceLoading(dt float32) {
	for _, ent := range e.entities {
		switch ent.state {
		case StateNotLoaded:
			if ent.asset.Ready() {
				ent.state = StateLoaded
			} else if err := ent.asset.Err(); err != nil && !ent.errReported {
				ent.errReported = true
				e.reportAssetError(ent, err)
			}
		case StateLoaded:
			if e.cfg.FadeIn {
				ent.state = StateFadingIn
				e.fadeStep(ent, dt)
			} else {
				ent.opacity = EasingState{Value: 1}
				ent.state = StateVisible
			}
		case StateFadingIn:
			e.fadeStep(ent, dt)
		}
	}
}

func (e *Engine) fadeStep(ent *Entity, dt float32) {
	e.easing.Step(&ent.opacity, 1, dt)
	if e.easing.Settled(&ent.opacity, 1) {
		ent.opacity = EasingState{Value: 1}
		ent.state = StateVisible
	}
}

// paint emits the frame's paint commands and returns how many entities
// were drawn.
func (e *Engine) paint(s Surface, offset Point) int {
	s.Clear()
	s.ResetTransform()
	s.Translate(offset.X, offset.Y)
	n := 0
	for _, ent := range e.entities {
		if !ent.painted() {
			continue
		}
		b := ent.bounds
		alpha := ent.Opacity()
		if ent.asset != nil {
			s.DrawImage(ent.asset, b.X, b.Y, b.Width, b.Height, alpha)
		} else {
			c := ent.color
			c.A *= alpha
			s.DrawRect(b.X, b.Y, b.Width, b.Height, c)
		}
		n++
	}
	s.ResetTransform()
	return n
}
