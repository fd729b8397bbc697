package engine

import "math"

// frameMs is the reference frame length the relaxation rates are tuned
// against; per-tick rates scale by dt/frameMs so slow-motion and
// fast-forward converge the same way.
const frameMs = 16.667

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// easeOut is a quadratic ease-out over [0, 1].
func easeOut(t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return 1 - (1-t)*(1-t)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// relaxToward moves cur toward target by rate-per-frame, scaled to the
// elapsed time. A zero dt leaves cur unchanged.
func relaxToward(cur, target, rate, dt float64) float64 {
	k := clamp(rate*dt/frameMs, 0, 1)
	return cur + (target-cur)*k
}

func gaussian(d, offset, spread float64) float64 {
	e := d - offset
	return math.Exp(-(e * e) / spread)
}
