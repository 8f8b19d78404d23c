package common

import (
	"github.com/chewxy/math32"
)

// HalfPi is π/2 as a float32, the pitch limit for first-person style cameras.
const HalfPi float32 = math32.Pi / 2

// Epsilon is the tolerance used by ApproxEqual.
const Epsilon float32 = 1e-5

// Clamp restricts v to the closed interval [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: v limited to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	return math32.Max(math32.Min(v, hi), lo)
}

// ApproxEqual reports whether a and b differ by at most Epsilon.
//
// Parameters:
//   - a, b: values to compare
//
// Returns:
//   - bool: true if |a-b| <= Epsilon
func ApproxEqual(a, b float32) bool {
	return math32.Abs(a-b) <= Epsilon
}
