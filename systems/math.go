package systems

import "math/rand"

// Clamp functions for common value ranges

// clampFloat clamps a value between min and max.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// Clamp01 clamps a value to the [0, 1] range.
func Clamp01(v float64) float64 {
	return clampFloat(v, 0, 1)
}

// Lerp interpolates from a toward b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MapRange linearly maps v from [inLo, inHi] to [outLo, outHi] without clamping.
func MapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)/(inHi-inLo)*(outHi-outLo)
}

// randRange returns a uniform value in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Bounds describes the canvas rectangle particles live in.
type Bounds struct {
	Width, Height float64
}

// Contains reports whether (x, y) lies inside the bounds grown by pad on every side.
func (b Bounds) Contains(x, y, pad float64) bool {
	return x >= -pad && x <= b.Width+pad && y >= -pad && y <= b.Height+pad
}
