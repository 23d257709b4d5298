// Package arr provides the fill, copy and mirror primitives used to build
// symmetric tables. float64 slices are routed through algo-vecmath kernels.
package arr

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavetable/dsp/core"
)

// Fill sets every element of dst to v.
func Fill[T core.Real](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// Copy copies min(len(dst), len(src)) elements and returns the count.
func Copy[T core.Real](dst, src []T) int {
	return copy(dst, src)
}

// MirrorR copies the first half of a onto the second half in reverse
// order: a[n-1-i] = a[i] for i < n/2. An odd middle element is untouched.
func MirrorR[T core.Real](a []T) {
	n := len(a)
	for i := 0; i < n>>1; i++ {
		a[n-1-i] = a[i]
	}
}

// MirrorDP copies the negated first half of a onto the second half in
// reverse order: a[n-1-i] = -a[i] for i < n/2.
func MirrorDP[T core.Real](a []T) {
	n := len(a)
	for i := 0; i < n>>1; i++ {
		a[n-1-i] = -a[i]
	}
}

// MirrorDQ writes the negated first half of a onto its second half:
// a[n/2+i] = -a[i].
func MirrorDQ[T core.Real](a []T) {
	h := len(a) >> 1
	NegateInto(a[h:h<<1], a[:h])
}

// NegateInto writes -src[i] into dst[i]. Slices must have equal length.
func NegateInto[T core.Real](dst, src []T) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.ScaleBlock(d, any(src).([]float64), -1)
		return
	}

	for i := range dst {
		dst[i] = -src[i]
	}
}

// MaxAbs returns the largest absolute value in x, 0 for an empty slice.
func MaxAbs[T core.Real](x []T) T {
	if f, ok := any(x).([]float64); ok {
		return T(vecmath.MaxAbs(f))
	}

	var m T
	for _, v := range x {
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}

	return m
}

// Scale multiplies every element of dst by s in place.
func Scale[T core.Real](dst []T, s float64) {
	if f, ok := any(dst).([]float64); ok {
		vecmath.ScaleBlockInPlace(f, s)
		return
	}

	for i := range dst {
		dst[i] = T(float64(dst[i]) * s)
	}
}
