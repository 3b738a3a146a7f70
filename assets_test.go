package parallax

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"
)

func solidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// waitSettled polls a until it is ready or failed.
func waitSettled(t *testing.T, a Asset) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !a.Ready() && a.Err() == nil {
		if time.Now().After(deadline) {
			t.Fatal("asset never settled")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestNewImageAsset(t *testing.T) {
	a := NewImageAsset("red", solidImage(64, 48, color.NRGBA{R: 255, A: 255}))
	if !a.Ready() || a.Err() != nil {
		t.Fatalf("ready = %v, err = %v", a.Ready(), a.Err())
	}
	if a.Ref() != "red" || a.Image() == nil {
		t.Errorf("ref = %q, image = %v", a.Ref(), a.Image())
	}
	avg := a.AverageColor()
	if avg.R < 0.99 || avg.G > 0.01 || avg.B > 0.01 || avg.A != 1 {
		t.Errorf("AverageColor = %+v, want red", avg)
	}
}

func TestAverageColorMixed(t *testing.T) {
	img := solidImage(10, 10, color.NRGBA{R: 255, A: 255})
	for y := 0; y < 10; y++ {
		for x := 5; x < 10; x++ {
			img.Set(x, y, color.NRGBA{B: 255, A: 255})
		}
	}
	avg := averageColor(img)
	if avg.R < 0.49 || avg.R > 0.51 || avg.B < 0.49 || avg.B > 0.51 {
		t.Errorf("averageColor = %+v, want half red half blue", avg)
	}
	if averageColor(image.NewNRGBA(image.Rect(0, 0, 0, 0))) != (Color{}) {
		t.Error("empty image should average to the zero color")
	}
}

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"green.png": {Data: encodePNG(t, solidImage(8, 8, color.NRGBA{G: 255, A: 255}))},
		"junk.png":  {Data: []byte("not a png")},
	}
	l := NewFSLoader(fsys)

	green := l.Load("green.png")
	waitSettled(t, green)
	if !green.Ready() || green.Err() != nil {
		t.Fatalf("green: ready = %v, err = %v", green.Ready(), green.Err())
	}
	if avg := green.(*ImageAsset).AverageColor(); avg.G < 0.99 {
		t.Errorf("green average = %+v", avg)
	}

	for _, ref := range []string{"missing.png", "junk.png"} {
		a := l.Load(ref)
		waitSettled(t, a)
		if a.Ready() || a.Err() == nil {
			t.Errorf("%s: ready = %v, err = %v; want a failure", ref, a.Ready(), a.Err())
		}
	}
}

func TestFSLoaderDrivesEngine(t *testing.T) {
	fsys := fstest.MapFS{
		"a.png": {Data: encodePNG(t, solidImage(4, 4, color.White))},
	}
	cfg := snapConfig(LayoutEntry{ID: "a", Left: 0, Top: 0, Width: 40, Height: 40, Asset: "a.png"})
	e, err := NewEngine(cfg, 100, 100, NewFSLoader(fsys))
	if err != nil {
		t.Fatal(err)
	}
	a := mustEntity(t, e, "a")
	waitSettled(t, a.Asset())

	e.Tick(Frame{DT: 1.0 / 60})
	e.Tick(Frame{DT: 1.0 / 60})
	if a.State() != StateVisible {
		t.Errorf("state = %v, want visible", a.State())
	}
}

func TestPendingImageAsset(t *testing.T) {
	a := NewPendingImageAsset("later")
	if a.Ready() || a.Err() != nil || a.Image() != nil || a.AverageColor() != (Color{}) {
		t.Fatal("pending asset should be neither ready nor failed")
	}
	a.Resolve(solidImage(2, 2, color.White))
	if !a.Ready() || a.Image() == nil {
		t.Error("Resolve should make the asset ready")
	}

	b := NewPendingImageAsset("never")
	b.Fail(fs.ErrNotExist)
	if b.Ready() || !errors.Is(b.Err(), fs.ErrNotExist) {
		t.Errorf("ready = %v, err = %v", b.Ready(), b.Err())
	}
}
