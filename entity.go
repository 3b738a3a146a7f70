package parallax

import "fmt"

// Asset is the engine's view of an asynchronously loaded resource: a
// boolean ready transition and, for failures, the load error. Assets become
// ready independently and out of order.
type Asset interface {
	Ready() bool
	Err() error
}

// ClickContext carries click event data.
type ClickContext struct {
	Entity   *Entity
	ID       string
	EntityID uint32
	UserData any
	X, Y     float64 // surface-local pointer position
	WorldX   float64 // pointer position with the parallax translation removed
	WorldY   float64
}

// Entity is one drawable element: a solid rectangle, or an image when Asset
// is set. Geometry and animation state are written only by the engine's
// frame tick; read them through the accessor methods.
type Entity struct {
	// Metadata
	UserData any
	EntityID uint32 // forwarded to an EntityStore; 0 disables forwarding

	// Per-entity click callback (nil by default).
	OnClick func(ClickContext)

	id         string
	home       Point
	center     Point
	baseWidth  float64
	baseHeight float64
	depth      float64
	color      Color
	asset      Asset

	// Animation state, owned by the frame tick.
	proximity EasingState // eased pointer distance
	opacity   EasingState
	state     LoadState
	factor    float64
	bounds    Rect
	sortKey   float64

	errReported bool
}

// NewRectEntity creates a solid-color entity centered on center.
func NewRectEntity(id string, center Point, width, height float64, c Color) (*Entity, error) {
	e, err := newEntity(id, center, width, height)
	if err != nil {
		return nil, err
	}
	e.color = c
	return e, nil
}

// NewImageEntity creates an entity drawn from asset. It stays invisible until
// the asset reports ready.
func NewImageEntity(id string, center Point, width, height float64, asset Asset) (*Entity, error) {
	if asset == nil {
		return nil, fmt.Errorf("%w: entity %q has a nil asset", ErrInvalidLayout, id)
	}
	e, err := newEntity(id, center, width, height)
	if err != nil {
		return nil, err
	}
	e.color = ColorWhite
	e.asset = asset
	return e, nil
}

func newEntity(id string, center Point, width, height float64) (*Entity, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty entity id", ErrInvalidLayout)
	}
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("%w: entity %q is %vx%v", ErrInvalidSize, id, width, height)
	}
	return &Entity{
		id:         id,
		home:       center,
		center:     center,
		baseWidth:  width,
		baseHeight: height,
		bounds:     rectAround(center, width, height),
	}, nil
}

// SetDepth sets the position-parallax multiplier: each frame the entity's
// center is placed at its home position plus the parallax offset scaled by
// depth. Zero (the default) keeps the center fixed. Call before mounting.
func (e *Entity) SetDepth(depth float64) {
	e.depth = depth
}

// ID returns the entity's stable identity.
func (e *Entity) ID() string { return e.id }

// Center returns the entity's current center.
func (e *Entity) Center() Point { return e.center }

// BaseSize returns the design-time dimensions.
func (e *Entity) BaseSize() (w, h float64) { return e.baseWidth, e.baseHeight }

// Color returns the fill color of a rect entity.
func (e *Entity) Color() Color { return e.color }

// Asset returns the backing asset, or nil for rect entities.
func (e *Entity) Asset() Asset { return e.asset }

// Factor returns the proximity factor used for the last painted frame.
func (e *Entity) Factor() float64 { return e.factor }

// Bounds returns the bounds used for the last painted frame. Hit testing
// uses exactly these bounds.
func (e *Entity) Bounds() Rect { return e.bounds }

// Opacity returns the current opacity in [0, 1].
func (e *Entity) Opacity() float64 { return clamp01(e.opacity.Value) }

// State returns the entity's loading state.
func (e *Entity) State() LoadState { return e.state }

// painted reports whether the entity takes part in painting and hit testing.
func (e *Entity) painted() bool {
	return e.state == StateFadingIn || e.state == StateVisible
}

// computeBounds derives the drawable bounds from the current center and
// proximity factor. The paint step and the hit tester both go through here.
func (e *Entity) computeBounds() Rect {
	return rectAround(e.center,
		scaledSize(e.baseWidth, e.factor),
		scaledSize(e.baseHeight, e.factor))
}
