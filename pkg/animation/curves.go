package animation

import "math"

// Path maps linear progress t in [0, 1] to eased progress.
//
// Paths may leave [0, 1] in the middle of the animation (see [Overshoot])
// but must return 0 at t=0 and 1 at t=1.
type Path func(t float64) float64

// Linear returns linear progress (no easing).
func Linear(t float64) float64 {
	return t
}

// EaseIn starts slowly and accelerates.
var EaseIn Path = CubicBezier(0.42, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates.
var EaseOut Path = CubicBezier(0.0, 0.0, 0.58, 1.0)

// EaseInOut starts and ends slowly.
var EaseInOut Path = CubicBezier(0.42, 0.0, 0.58, 1.0)

// Overshoot runs past the end value and settles back.
func Overshoot(t float64) float64 {
	const s = 1.70158
	t--
	return t*t*((s+1)*t+s) + 1
}

// Bounce reaches the end value and bounces on it a few times.
func Bounce(t float64) float64 {
	const n, d = 7.5625, 2.75
	switch {
	case t < 1/d:
		return n * t * t
	case t < 2/d:
		t -= 1.5 / d
		return n*t*t + 0.75
	case t < 2.5/d:
		t -= 2.25 / d
		return n*t*t + 0.9375
	default:
		t -= 2.625 / d
		return n*t*t + 0.984375
	}
}

// Step holds the start value until the very end.
func Step(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 0
}

// CubicBezier returns an easing path matching CSS cubic-bezier().
// The curve starts at (0,0) and ends at (1,1); (x1,y1) and (x2,y2) are the
// control points.
func CubicBezier(x1, y1, x2, y2 float64) Path {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		for range 8 {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezier(y1, y2, clampUnit(u))
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Newton did not converge; bisect within [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 16 {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}
		return bezier(y1, y2, u)
	}
}

func bezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	return min(max(v, 0), 1)
}

// PathByName resolves the names accepted in configuration files.
func PathByName(name string) (Path, bool) {
	switch name {
	case "", "linear":
		return Linear, true
	case "ease_in":
		return EaseIn, true
	case "ease_out":
		return EaseOut, true
	case "ease_in_out":
		return EaseInOut, true
	case "overshoot":
		return Overshoot, true
	case "bounce":
		return Bounce, true
	case "step":
		return Step, true
	default:
		return nil, false
	}
}
