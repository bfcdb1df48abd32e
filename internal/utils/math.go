package utils

// Clamp limits cur to the [low, high] range.
func Clamp(cur, low, high float64) float64 {
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}

// ClampInt limits cur to the [low, high] range.
func ClampInt(cur, low, high int) int {
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}

// Lerp interpolates linearly from v0 to v1 as t runs 0..1.
func Lerp(v0, v1, t float64) float64 {
	return v0*(1-t) + v1*t
}
