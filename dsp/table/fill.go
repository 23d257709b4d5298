package table

import (
	"math"

	"github.com/cwbudde/algo-wavetable/dsp/core"
	"github.com/cwbudde/algo-wavetable/internal/arr"
)

// Sine fills dst with one period of a sine wave.
func Sine[T core.Real](dst []T) {
	halfPeriod(dst, 0, math.Sin)
}

// Cosine fills dst with one period of a cosine wave.
func Cosine[T core.Real](dst []T) {
	halfPeriod(dst, 1, math.Cos)
}

// halfPeriod evaluates f over the first half of the period and writes the
// negated values into the second half.
func halfPeriod[T core.Real](dst []T, first T, f func(float64) float64) {
	n := len(dst)
	h := n >> 1
	if h == 0 {
		return
	}

	inc := 2 * math.Pi / float64(n)
	dst[0] = first
	dst[h] = -first
	for i := 1; i < h; i++ {
		v := T(f(float64(i) * inc))
		dst[i] = v
		dst[h+i] = -v
	}
}

// CosSin fills dst with periods cycles of a cosine in dst[:n] and a sine in
// dst[n:2n], where n = len(dst)/2. Values come from a complex rotation
// recurrence.
func CosSin[T core.Real](dst []T, periods float64) {
	n := len(dst) >> 1
	if n == 0 {
		return
	}

	rad := periods * 2 * math.Pi / float64(n)
	c1, s1 := math.Cos(rad), math.Sin(rad)
	cs, sn := 1.0, 0.0

	cos, sin := dst[:n], dst[n:n<<1]
	for i := range cos {
		cos[i] = T(cs)
		sin[i] = T(sn)
		core.MulComplex(&cs, &sn, c1, s1)
	}
}

// Sinusoid fills dst with sin(2*pi*periods*i/len + phase). Every sample is
// evaluated directly.
func Sinusoid[T core.Real](dst []T, phase, periods float64) {
	inc := 2 * math.Pi * periods / float64(len(dst))
	for i := range dst {
		dst[i] = T(math.Sin(inc*float64(i) + phase))
	}
}

// Decay fills dst with a section of an exponential decay normalized to
// fall from 1 towards 0. Negative order bends the curve down and positive
// order bends it up. Order 0 yields the line 1 - i/len.
func Decay[T core.Real](dst []T, order float64) {
	n := float64(len(dst))
	if order == 0 {
		for i := range dst {
			dst[i] = T(1 - float64(i)/n)
		}
		return
	}

	final := math.Pow(2, order)
	lambda := math.Log(final) / n
	scale := 1 / (1 - final)
	for i := range dst {
		dst[i] = T((math.Exp(lambda*float64(i)) - final) * scale)
	}
}

// Poly fills dst with a0 + a1*i + a2*i^2.
func Poly[T core.Real](dst []T, a0, a1, a2 T) {
	for i := range dst {
		dst[i] = core.Poly(T(i), a0, a1, a2)
	}
}

// Normalize scales dst so its peak magnitude is 1. A silent table is left
// unchanged.
func Normalize[T core.Real](dst []T) {
	peak := arr.MaxAbs(dst)
	if peak == 0 {
		return
	}
	arr.Scale(dst, 1/float64(peak))
}

// Half returns a copy of the first half of a full-period table, the form
// read by phase.AtH.
func Half[T core.Real](full []T) []T {
	out := make([]T, len(full)>>1)
	arr.Copy(out, full)
	return out
}

// Quarter returns a copy of the first n/4+1 samples of a full-period table
// of n samples, the form read by phase.AtQ.
func Quarter[T core.Real](full []T) []T {
	out := make([]T, len(full)>>2+1)
	arr.Copy(out, full)
	return out
}
