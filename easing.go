package parallax

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EasingPolicy selects how an animated value approaches its destination.
// The policies are not numerically interchangeable; one is chosen per engine.
type EasingPolicy uint8

const (
	// PolicyProportional recomputes speed as gap × acceleration on every
	// step. It never lands exactly on the destination, and it chases a moving
	// destination smoothly.
	PolicyProportional EasingPolicy = iota

	// PolicyGuarded applies the same recompute, gated on
	// compare(current, dest) - speed > acceleration. Once the gap, net of the
	// current speed, falls inside the band, the state stops changing.
	PolicyGuarded

	// PolicyTween runs a fixed-duration gween tween. The destination and
	// duration are fixed when a tween starts. A moving destination is picked
	// up only by the next tween, so the value catches up in discrete legs.
	PolicyTween
)

var policyNames = [...]string{"proportional", "guarded", "tween"}

func (p EasingPolicy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("EasingPolicy(%d)", p)
}

// MarshalText implements encoding.TextMarshaler.
func (p EasingPolicy) MarshalText() ([]byte, error) {
	if int(p) >= len(policyNames) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPolicy, p)
	}
	return []byte(policyNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *EasingPolicy) UnmarshalText(b []byte) error {
	for i, name := range policyNames {
		if string(b) == name {
			*p = EasingPolicy(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidPolicy, string(b))
}

// CompareFunc measures the gap between two values. It must be non-negative.
type CompareFunc func(a, b float64) float64

// AbsDiff is the default CompareFunc.
func AbsDiff(a, b float64) float64 {
	return math.Abs(a - b)
}

// EasingState is the per-value state advanced by an Easing. Value is a
// distance-like or offset-like quantity; Speed is always >= 0.
type EasingState struct {
	Value float64
	Speed float64

	tween   *gween.Tween
	tweenTo float64
}

// Tweening reports whether a fixed-duration tween is in flight.
func (st *EasingState) Tweening() bool {
	return st.tween != nil
}

// Easing is the shared step function used for every animated quantity of an
// engine (proximity distance, opacity, parallax offset) so all of them
// follow identical semantics.
type Easing struct {
	Policy       EasingPolicy
	Acceleration float64
	Compare      CompareFunc

	// Tween parameters (PolicyTween only).
	Duration float32
	Curve    ease.TweenFunc
}

func (e Easing) compare(a, b float64) float64 {
	if e.Compare == nil {
		return AbsDiff(a, b)
	}
	return e.Compare(a, b)
}

func (e Easing) validate() error {
	switch e.Policy {
	case PolicyProportional, PolicyGuarded:
		if !(e.Acceleration > 0 && e.Acceleration <= 1) {
			return fmt.Errorf("%w: %v not in (0, 1]", ErrInvalidAcceleration, e.Acceleration)
		}
	case PolicyTween:
		if !(e.Duration > 0) || e.Curve == nil {
			return fmt.Errorf("%w: duration %v", ErrInvalidTween, e.Duration)
		}
	default:
		return fmt.Errorf("%w: %d", ErrInvalidPolicy, e.Policy)
	}
	return nil
}

// Step advances st one frame toward dest. dt is the frame duration in
// seconds and is only consulted by PolicyTween.
func (e Easing) Step(st *EasingState, dest float64, dt float32) {
	switch e.Policy {
	case PolicyProportional:
		e.approach(st, dest)
	case PolicyGuarded:
		if e.compare(st.Value, dest)-st.Speed > e.Acceleration {
			e.approach(st, dest)
		}
	case PolicyTween:
		e.tweenStep(st, dest, dt)
	}
}

// approach is the proportional recompute shared by policies A and B.
func (e Easing) approach(st *EasingState, dest float64) {
	st.Speed = math.Abs(e.compare(dest, st.Value) * e.Acceleration)
	st.Value += sign(dest-st.Value) * st.Speed
}

func (e Easing) tweenStep(st *EasingState, dest float64, dt float32) {
	if st.tween == nil {
		if st.Value == dest {
			st.Speed = 0
			return
		}
		st.tween = gween.New(float32(st.Value), float32(dest), e.Duration, e.Curve)
		st.tweenTo = dest
	}
	v, done := st.tween.Update(dt)
	prev := st.Value
	if done {
		st.Value = st.tweenTo
		st.tween = nil
	} else {
		st.Value = float64(v)
	}
	st.Speed = math.Abs(st.Value - prev)
}

// Settled reports whether st is visually converged on dest under e's policy.
func (e Easing) Settled(st *EasingState, dest float64) bool {
	switch e.Policy {
	case PolicyProportional:
		return e.compare(st.Value, dest) <= e.Acceleration
	case PolicyGuarded:
		return e.compare(st.Value, dest)-st.Speed <= e.Acceleration
	case PolicyTween:
		return st.tween == nil && st.Value == dest
	}
	return true
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
