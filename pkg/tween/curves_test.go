package tween

import (
	"math"
	"testing"
)

func TestCurveEndpoints(t *testing.T) {
	curves := map[string]func(float64) float64{
		"linear":     LinearCurve,
		"ease":       Ease,
		"easeIn":     EaseIn,
		"easeOut":    EaseOut,
		"easeInOut":  EaseInOut,
		"customBez":  CubicBezier(0.17, 0.67, 0.83, 0.67),
		"overshoots": CubicBezier(0.68, -0.55, 0.27, 1.55),
	}
	for name, curve := range curves {
		if got := curve(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestCurveMonotonic(t *testing.T) {
	curves := map[string]func(float64) float64{
		"ease":      Ease,
		"easeIn":    EaseIn,
		"easeOut":   EaseOut,
		"easeInOut": EaseInOut,
	}
	for name, curve := range curves {
		prev := curve(0)
		for i := 1; i <= 100; i++ {
			cur := curve(float64(i) / 100)
			if cur < prev-1e-9 {
				t.Errorf("%s not monotonic at t=%v: %v < %v",
					name, float64(i)/100, cur, prev)
			}
			prev = cur
		}
	}
}

func TestCubicBezierSymmetry(t *testing.T) {
	// Control points that mirror each other yield a curve symmetric
	// about (0.5, 0.5).
	curve := CubicBezier(0.42, 0, 0.58, 1)
	for _, p := range []float64{0.1, 0.25, 0.4} {
		a := curve(p)
		b := curve(1 - p)
		if math.Abs(a+b-1) > 1e-4 {
			t.Errorf("curve(%v)+curve(%v) = %v, want 1", p, 1-p, a+b)
		}
	}
}

func TestEaseInStartsSlow(t *testing.T) {
	if EaseIn(0.25) >= 0.25 {
		t.Errorf("EaseIn(0.25) = %v, want < 0.25", EaseIn(0.25))
	}
	if EaseOut(0.25) <= 0.25 {
		t.Errorf("EaseOut(0.25) = %v, want > 0.25", EaseOut(0.25))
	}
}

func TestCubicBezierIdentity(t *testing.T) {
	identity := CubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, p := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		if got := identity(p); math.Abs(got-p) > 1e-4 {
			t.Errorf("identity bezier(%v) = %v", p, got)
		}
	}
}
