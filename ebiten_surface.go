package parallax

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ebitenImager is implemented by assets that can be drawn by EbitenSurface.
type ebitenImager interface {
	EbitenImage() *ebiten.Image
}

// whitePixel is a 1x1 white image scaled and tinted to draw solid rects.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// EbitenSurface is a Surface that draws onto an *ebiten.Image.
type EbitenSurface struct {
	// ClearColor fills the target on Clear. The zero value clears to
	// transparent black.
	ClearColor Color

	target *ebiten.Image
	tx, ty float64
	op     ebiten.DrawImageOptions
}

// NewEbitenSurface creates a surface drawing onto target.
func NewEbitenSurface(target *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{target: target}
}

// Bind retargets the surface, typically to the screen passed to Draw.
func (s *EbitenSurface) Bind(target *ebiten.Image) {
	s.target = target
}

// Target returns the image currently drawn to.
func (s *EbitenSurface) Target() *ebiten.Image {
	return s.target
}

func (s *EbitenSurface) Clear() {
	if s.target == nil {
		return
	}
	if s.ClearColor.A == 0 {
		s.target.Clear()
		return
	}
	s.target.Fill(s.ClearColor.toRGBA())
}

func (s *EbitenSurface) DrawImage(asset Asset, x, y, w, h, alpha float64) {
	if s.target == nil {
		return
	}
	src, ok := asset.(ebitenImager)
	if !ok {
		return
	}
	img := src.EbitenImage()
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	s.op = ebiten.DrawImageOptions{}
	s.op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	s.op.GeoM.Translate(x+s.tx, y+s.ty)
	s.op.ColorScale.ScaleAlpha(float32(alpha))
	s.op.Filter = ebiten.FilterLinear
	s.target.DrawImage(img, &s.op)
}

func (s *EbitenSurface) DrawRect(x, y, w, h float64, c Color) {
	if s.target == nil {
		return
	}
	s.op = ebiten.DrawImageOptions{}
	s.op.GeoM.Scale(w, h)
	s.op.GeoM.Translate(x+s.tx, y+s.ty)
	s.op.ColorScale.ScaleWithColor(c.toRGBA())
	s.target.DrawImage(ensureWhitePixel(), &s.op)
}

func (s *EbitenSurface) Translate(dx, dy float64) {
	s.tx += dx
	s.ty += dy
}

func (s *EbitenSurface) ResetTransform() {
	s.tx, s.ty = 0, 0
}
