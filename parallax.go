package parallax

import "image/color"

// Point is an immutable 2D position or delta in surface coordinates. The
// origin is the surface's top-left corner, with Y increasing downward.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the delta from q to p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at paint submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default fill for rect entities.
var ColorWhite = Color{1, 1, 1, 1}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// rectAround returns the rectangle of size w×h centered on c.
func rectAround(c Point, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// LoadState tracks an entity through the optional Loading sub-phase. The
// frame driver advances it by polling the entity's asset; nothing else
// writes it.
type LoadState uint8

const (
	StateNotLoaded LoadState = iota // asset pending (or failed); entity is not painted
	StateLoaded                     // asset ready, fade not started yet
	StateFadingIn                   // opacity easing toward 1
	StateVisible                    // fully opaque, participates in painting and hits
)

func (s LoadState) String() string {
	switch s {
	case StateNotLoaded:
		return "not-loaded"
	case StateLoaded:
		return "loaded"
	case StateFadingIn:
		return "fading-in"
	case StateVisible:
		return "visible"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of interaction event forwarded to an EntityStore.
type EventType uint8

const (
	EventClick        EventType = iota // a click resolved to an entity
	EventPointerEnter                  // the pointer started hovering an entity
	EventPointerLeave                  // the pointer stopped hovering an entity
)
