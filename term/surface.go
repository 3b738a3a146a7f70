// Package term renders a parallax engine into a terminal using tcell. Each
// cell stands for a cellW×cellH block of engine pixels; entities are drawn
// as background-colored cells, images by their average color.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/parallax"
)

// averageColorer is implemented by assets that can summarize themselves as a
// single color (parallax.ImageAsset does).
type averageColorer interface {
	AverageColor() parallax.Color
}

// Surface is a parallax.Surface over a tcell screen.
type Surface struct {
	screen       tcell.Screen
	cellW, cellH float64
	background   colorful.Color
	tx, ty       float64
}

// NewSurface creates a surface where one terminal cell covers cellW×cellH
// engine pixels. Terminal cells are roughly twice as tall as wide, so
// cellH ≈ 2*cellW keeps shapes square.
func NewSurface(screen tcell.Screen, cellW, cellH float64) *Surface {
	return &Surface{screen: screen, cellW: cellW, cellH: cellH}
}

// SetBackground sets the color translucent entities are blended over.
func (s *Surface) SetBackground(c parallax.Color) {
	s.background = colorful.Color{R: c.R, G: c.G, B: c.B}
}

// PixelSize returns the screen size in engine pixels.
func (s *Surface) PixelSize() (w, h float64) {
	cols, rows := s.screen.Size()
	return float64(cols) * s.cellW, float64(rows) * s.cellH
}

// CellCenter converts a cell position to the engine pixel at its center.
func (s *Surface) CellCenter(col, row int) parallax.Point {
	return parallax.Point{
		X: (float64(col) + 0.5) * s.cellW,
		Y: (float64(row) + 0.5) * s.cellH,
	}
}

func (s *Surface) Clear() {
	s.screen.Clear()
}

func (s *Surface) DrawImage(asset parallax.Asset, x, y, w, h, alpha float64) {
	src, ok := asset.(averageColorer)
	if !ok {
		return
	}
	c := src.AverageColor()
	c.A *= alpha
	s.fill(x+s.tx, y+s.ty, w, h, c)
}

func (s *Surface) DrawRect(x, y, w, h float64, c parallax.Color) {
	s.fill(x+s.tx, y+s.ty, w, h, c)
}

func (s *Surface) Translate(dx, dy float64) {
	s.tx += dx
	s.ty += dy
}

func (s *Surface) ResetTransform() {
	s.tx, s.ty = 0, 0
}

// fill paints every cell whose center lies inside the pixel rect.
func (s *Surface) fill(x, y, w, h float64, c parallax.Color) {
	if c.A <= 0 {
		return
	}
	cols, rows := s.screen.Size()
	c0 := max(0, int(math.Ceil(x/s.cellW-0.5)))
	c1 := min(cols-1, int(math.Floor((x+w)/s.cellW-0.5)))
	r0 := max(0, int(math.Ceil(y/s.cellH-0.5)))
	r1 := min(rows-1, int(math.Floor((y+h)/s.cellH-0.5)))
	if c0 > c1 || r0 > r1 {
		return
	}
	style := tcell.StyleDefault.Background(s.blend(c))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// blend composites c over the background color.
func (s *Surface) blend(c parallax.Color) tcell.Color {
	fg := colorful.Color{R: c.R, G: c.G, B: c.B}
	out := s.background.BlendRgb(fg, math.Min(c.A, 1)).Clamped()
	r, g, b := out.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
