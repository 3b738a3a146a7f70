package parallax

import (
	"fmt"
	"image"
	"io/fs"
	"sync/atomic"

	// Decoders for the formats FSLoader accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/hajimehoshi/ebiten/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ImageAsset is an image that becomes ready asynchronously. Decoding happens
// off the game goroutine; the GPU upload is deferred to the first
// EbitenImage call, which the paint step makes on the game goroutine.
type ImageAsset struct {
	ref string

	ready  atomic.Bool
	failed atomic.Bool
	err    error       // written before failed is set
	img    image.Image // written before ready is set
	avg    Color       // written before ready is set

	ebi *ebiten.Image
}

// NewImageAsset wraps an already decoded image. The asset is ready
// immediately.
func NewImageAsset(ref string, img image.Image) *ImageAsset {
	a := &ImageAsset{ref: ref}
	a.Resolve(img)
	return a
}

// NewPendingImageAsset returns an asset that stays pending until Resolve or
// Fail is called, for loaders that fetch images their own way.
func NewPendingImageAsset(ref string) *ImageAsset {
	return &ImageAsset{ref: ref}
}

// Ref returns the reference the asset was loaded from.
func (a *ImageAsset) Ref() string { return a.ref }

// Ready reports whether the image is decoded and usable.
func (a *ImageAsset) Ready() bool { return a.ready.Load() }

// Err returns the load error, or nil while pending or after success.
func (a *ImageAsset) Err() error {
	if !a.failed.Load() {
		return nil
	}
	return a.err
}

// Image returns the decoded image, or nil until ready.
func (a *ImageAsset) Image() image.Image {
	if !a.Ready() {
		return nil
	}
	return a.img
}

// EbitenImage returns the GPU image, uploading it on first use. Must be
// called from the game goroutine.
func (a *ImageAsset) EbitenImage() *ebiten.Image {
	if !a.Ready() {
		return nil
	}
	if a.ebi == nil {
		a.ebi = ebiten.NewImageFromImage(a.img)
	}
	return a.ebi
}

// AverageColor returns the mean color of the image, used by surfaces that
// cannot draw pixels (such as a terminal).
func (a *ImageAsset) AverageColor() Color {
	if !a.Ready() {
		return Color{}
	}
	return a.avg
}

// Resolve marks the asset ready with img. It may be called from any
// goroutine, at most once, and never after Fail.
func (a *ImageAsset) Resolve(img image.Image) {
	a.img = img
	a.avg = averageColor(img)
	a.ready.Store(true)
}

// Fail marks the asset as permanently failed with err.
func (a *ImageAsset) Fail(err error) {
	a.err = err
	a.failed.Store(true)
}

// averageSamples bounds the per-axis sample count for averageColor.
const averageSamples = 32

// averageColor samples img on a grid and averages the opaque samples.
func averageColor(img image.Image) Color {
	b := img.Bounds()
	if b.Empty() {
		return Color{}
	}
	stepX := max(1, b.Dx()/averageSamples)
	stepY := max(1, b.Dy()/averageSamples)
	var r, g, bl float64
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y += stepY {
		for x := b.Min.X; x < b.Max.X; x += stepX {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			r += c.R
			g += c.G
			bl += c.B
			n++
		}
	}
	if n == 0 {
		return Color{}
	}
	avg := colorful.Color{R: r / float64(n), G: g / float64(n), B: bl / float64(n)}.Clamped()
	return Color{R: avg.R, G: avg.G, B: avg.B, A: 1}
}

// FSLoader loads image assets from a file system in background goroutines.
// Assets resolve independently and in no particular order.
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader creates a loader reading from fsys (os.DirFS, embed.FS, ...).
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// Load starts decoding ref and returns its pending asset.
func (l *FSLoader) Load(ref string) Asset {
	a := NewPendingImageAsset(ref)
	go func() {
		img, err := l.decode(ref)
		if err != nil {
			a.Fail(err)
			return
		}
		a.Resolve(img)
	}()
	return a
}

func (l *FSLoader) decode(ref string) (image.Image, error) {
	f, err := l.fsys.Open(ref)
	if err != nil {
		return nil, fmt.Errorf("load asset %s: %w", ref, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode asset %s: %w", ref, err)
	}
	return img, nil
}
