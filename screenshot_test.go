package parallax

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-hover", "after-hover"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#", "special___"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	h := newTestHost(t)
	h.Screenshot("a")
	h.Screenshot("b")
	if len(h.screenshotQueue) != 2 {
		t.Fatalf("queue len = %d, want 2", len(h.screenshotQueue))
	}
	if h.screenshotQueue[0] != "a" || h.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", h.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	h := newTestHost(t)
	if h.cfg.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", h.cfg.ScreenshotDir, "screenshots")
	}
}

func TestUnpremultiply(t *testing.T) {
	pix := []byte{
		128, 64, 0, 128, // half-transparent orange
		10, 20, 30, 255, // opaque: unchanged
		0, 0, 0, 0, // transparent: unchanged
	}
	unpremultiply(pix)
	want := []byte{255, 127, 0, 128, 10, 20, 30, 255, 0, 0, 0, 0}
	for i := range want {
		if pix[i] != want[i] {
			t.Fatalf("pix = %v, want %v", pix, want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 3 || cfg.Height != 2 {
		t.Errorf("decoded %dx%d, want 3x2", cfg.Width, cfg.Height)
	}
}
