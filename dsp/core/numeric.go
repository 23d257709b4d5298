package core

import (
	"math"
	"math/bits"
)

const defaultEpsilon = 1e-12

// Real is the sample type accepted by table generators.
type Real interface {
	~float32 | ~float64
}

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Poly evaluates a0 + a1*x + a2*x^2.
func Poly[T Real](x, a0, a1, a2 T) T {
	return a0 + x*(a1+x*a2)
}

// MulComplex multiplies (re, im) in place by (cre, cim).
func MulComplex(re, im *float64, cre, cim float64) {
	r := *re*cre - *im*cim
	*im = *re*cim + *im*cre
	*re = r
}

// Odd reports whether n is odd.
func Odd(n int) bool {
	return n&1 != 0
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns floor(log2(n)) for n > 0 and -1 otherwise.
func Log2(n int) int {
	if n <= 0 {
		return -1
	}

	return bits.Len(uint(n)) - 1
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
