package parallax

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the next drawn frame. The PNG lands
// in RunConfig.ScreenshotDir as <timestamp>_<label>.png.
func (h *Host) Screenshot(label string) {
	h.screenshotQueue = append(h.screenshotQueue, label)
}

// flushScreenshots writes every queued capture of screen. Failures are
// logged and the queue is dropped; a missing screenshot never stops the
// host.
func (h *Host) flushScreenshots(screen *ebiten.Image) {
	if len(h.screenshotQueue) == 0 {
		return
	}
	defer func() { h.screenshotQueue = h.screenshotQueue[:0] }()

	if err := os.MkdirAll(h.cfg.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[parallax] screenshot: %v\n", err)
		return
	}
	img := snapshot(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range h.screenshotQueue {
		name := stamp + "_" + sanitizeLabel(label) + ".png"
		if err := writePNG(filepath.Join(h.cfg.ScreenshotDir, name), img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[parallax] screenshot: %v\n", err)
		}
	}
}

// snapshot reads screen back into a straight-alpha image.
func snapshot(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	unpremultiply(img.Pix)
	return img
}

// unpremultiply converts premultiplied RGBA bytes to straight alpha in place.
func unpremultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := int(pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := 0; c < 3; c++ {
			pix[i+c] = uint8(min(int(pix[i+c])*255/a, 255))
		}
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.' and replaces everything
// else with '_'. Blank labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
