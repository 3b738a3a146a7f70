package parallax

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween/ease"
)

// Construction errors. Malformed configuration fails fast; nothing is
// silently clamped.
var (
	ErrInvalidCutoff       = errors.New("parallax: cutoff distance must be positive")
	ErrInvalidAcceleration = errors.New("parallax: invalid acceleration coefficient")
	ErrInvalidParallax     = errors.New("parallax: parallax coefficient must be non-negative")
	ErrInvalidSize         = errors.New("parallax: dimensions must be positive")
	ErrInvalidPolicy       = errors.New("parallax: unknown easing policy")
	ErrInvalidTween        = errors.New("parallax: invalid tween parameters")
	ErrInvalidLayout       = errors.New("parallax: invalid layout entry")
)

// Defaults applied by DefaultConfig.
const (
	DefaultCutoffDistance      = 300
	DefaultAcceleration        = 0.05
	DefaultParallaxCoefficient = 0.25
	DefaultTweenDuration       = 0.4
	DefaultTweenCurve          = "out-cubic"
)

// Units selects how a LayoutEntry's geometry is interpreted.
type Units string

const (
	UnitsPixels   Units = "pixels"
	UnitsFraction Units = "fraction" // fractions of the surface size
)

// LayoutEntry describes one entity's initial layout. Left/Top locate the
// entity's top-left corner.
type LayoutEntry struct {
	ID     string  `json:"id"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Units  Units   `json:"units,omitempty"`
	Asset  string  `json:"asset,omitempty"` // image reference; empty for a rect
	Color  string  `json:"color,omitempty"` // hex color for rects, e.g. "#3fa9f5"
	Depth  float64 `json:"depth,omitempty"` // position-parallax multiplier
}

// Config holds engine parameters. It is copied at construction and is not
// mutable afterwards.
type Config struct {
	CutoffDistance      float64      `json:"cutoffDistance"`
	Acceleration        float64      `json:"acceleration"`
	ParallaxCoefficient float64      `json:"parallaxCoefficient"`
	Policy              EasingPolicy `json:"policy"`

	// Tween parameters (PolicyTween only).
	TweenDuration float32 `json:"tweenDuration,omitempty"`
	TweenCurve    string  `json:"tweenCurve,omitempty"`

	// FadeIn enables the Loading sub-phase: entities fade in as their assets
	// become ready instead of appearing at full opacity.
	FadeIn bool `json:"fadeIn"`

	Entities []LayoutEntry `json:"entities"`
}

// DefaultConfig returns a Config populated with the default parameters and
// no entities.
func DefaultConfig() Config {
	return Config{
		CutoffDistance:      DefaultCutoffDistance,
		Acceleration:        DefaultAcceleration,
		ParallaxCoefficient: DefaultParallaxCoefficient,
		Policy:              PolicyGuarded,
		TweenDuration:       DefaultTweenDuration,
		TweenCurve:          DefaultTweenCurve,
		FadeIn:              true,
	}
}

// LoadConfig parses a JSON config. Missing fields keep their defaults.
func LoadConfig(jsonData []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the scalar parameters and every layout entry's shape.
func (c Config) Validate() error {
	if !(c.CutoffDistance > 0) || math.IsInf(c.CutoffDistance, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidCutoff, c.CutoffDistance)
	}
	if !(c.ParallaxCoefficient >= 0) || math.IsInf(c.ParallaxCoefficient, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidParallax, c.ParallaxCoefficient)
	}
	if _, err := c.easing(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Entities))
	for i, le := range c.Entities {
		if le.ID == "" {
			return fmt.Errorf("%w: entry %d has no id", ErrInvalidLayout, i)
		}
		if seen[le.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidLayout, le.ID)
		}
		seen[le.ID] = true
		if !(le.Width > 0) || !(le.Height > 0) {
			return fmt.Errorf("%w: entry %q is %vx%v", ErrInvalidSize, le.ID, le.Width, le.Height)
		}
		switch le.Units {
		case "", UnitsPixels, UnitsFraction:
		default:
			return fmt.Errorf("%w: entry %q has units %q", ErrInvalidLayout, le.ID, le.Units)
		}
		if le.Asset == "" && le.Color != "" {
			if _, err := ParseColor(le.Color); err != nil {
				return fmt.Errorf("%w: entry %q: %v", ErrInvalidLayout, le.ID, err)
			}
		}
	}
	return nil
}

// easing builds the shared step function for this config.
func (c Config) easing() (Easing, error) {
	e := Easing{
		Policy:       c.Policy,
		Acceleration: c.Acceleration,
		Duration:     c.TweenDuration,
	}
	if c.Policy == PolicyTween {
		fn, ok := tweenCurves[strings.ToLower(c.TweenCurve)]
		if !ok {
			return Easing{}, fmt.Errorf("%w: unknown curve %q", ErrInvalidTween, c.TweenCurve)
		}
		e.Curve = fn
	}
	if err := e.validate(); err != nil {
		return Easing{}, err
	}
	return e, nil
}

// resolve converts a layout entry to a center and size in pixels.
func (le LayoutEntry) resolve(surfaceW, surfaceH float64) (center Point, w, h float64) {
	left, top, w, h := le.Left, le.Top, le.Width, le.Height
	if le.Units == UnitsFraction {
		left *= surfaceW
		top *= surfaceH
		w *= surfaceW
		h *= surfaceH
	}
	return Point{left + w/2, top + h/2}, w, h
}

// ParseColor parses a hex color such as "#ff8800" or "#f80".
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(expandHex(s))
	if err != nil {
		return Color{}, err
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

func expandHex(s string) string {
	if len(s) == 4 && s[0] == '#' {
		return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	return s
}

// tweenCurves maps config curve names to gween easing functions.
var tweenCurves = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"out-expo":     ease.OutExpo,
	"in-out-expo":  ease.InOutExpo,
	"out-back":     ease.OutBack,
	"out-elastic":  ease.OutElastic,
	"out-bounce":   ease.OutBounce,
}
