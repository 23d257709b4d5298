package table

import (
	"math"

	"github.com/cwbudde/algo-wavetable/dsp/core"
)

const (
	sawFactor = 2 / math.Pi
	sqrFactor = 4 / math.Pi
	triFactor = 8 / (math.Pi * math.Pi)
)

// MaxHarmonics returns the highest harmonic representable in a table of n
// samples.
func MaxHarmonics(n int) int {
	return n >> 1
}

// Sum adds harmonics [hrmLo, hrmHi] of w into dst and completes the table
// from w's symmetry.
func Sum[T core.Real](w Wave, dst []T, hrmLo, hrmHi int) {
	Accumulate(w, dst, hrmLo, hrmHi)
	Extrapolate(dst, w.Symmetry())
}

// Accumulate adds harmonics [hrmLo, hrmHi] of w into the unique region of
// dst only. The table is incomplete until it is passed to [Extrapolate]
// with w.Symmetry().
func Accumulate[T core.Real](w Wave, dst []T, hrmLo, hrmHi int) {
	switch w {
	case WaveImpulse:
		accumImpulse(dst, hrmLo, hrmHi)
	case WaveSaw:
		accumSaw(dst, hrmLo, hrmHi)
	case WaveSquare:
		accumSquare(dst, hrmLo, hrmHi)
	case WaveTriangle:
		accumTriangle(dst, hrmLo, hrmHi)
	}
}

// ImpulseTrain writes the impulse sum of every harmonic in [1, n/2-1] into
// dst in closed form: [n/2-1, 0, -1, 0, -1, 0, ...]. dst is overwritten.
func ImpulseTrain[T core.Real](dst []T) {
	n := len(dst) &^ 1
	if n == 0 {
		return
	}

	dst[0] = T((n >> 1) - 1)
	dst[1] = 0
	for i := 2; i < n; i += 2 {
		dst[i] = -1
		dst[i+1] = 0
	}
}

// ImpulseSum adds an unnormalized band-limited impulse into dst. The ideal
// shape at 8 samples is [4, -1, 0, -1, 0, -1, 0, -1].
func ImpulseSum[T core.Real](dst []T, hrmLo, hrmHi int) {
	Sum(WaveImpulse, dst, hrmLo, hrmHi)
}

// SawSum adds a band-limited saw into dst. The ideal shape at 8 samples is
// [0, 0.75, 0.5, 0.25, 0, -0.25, -0.5, -0.75].
func SawSum[T core.Real](dst []T, hrmLo, hrmHi int) {
	Sum(WaveSaw, dst, hrmLo, hrmHi)
}

// SquareSum adds a band-limited square into dst. Even harmonics are
// skipped. The ideal shape at 8 samples is [0, 1, 1, 1, 0, -1, -1, -1].
func SquareSum[T core.Real](dst []T, hrmLo, hrmHi int) {
	Sum(WaveSquare, dst, hrmLo, hrmHi)
}

// TriangleSum adds a band-limited triangle into dst. Even harmonics are
// skipped. The ideal shape at 8 samples is [0, 0.5, 1, 0.5, 0, -0.5, -1, -0.5].
func TriangleSum[T core.Real](dst []T, hrmLo, hrmHi int) {
	Sum(WaveTriangle, dst, hrmLo, hrmHi)
}

// accumImpulse writes dst[0..n/2].
func accumImpulse[T core.Real](dst []T, hrmLo, hrmHi int) {
	n := len(dst)
	inc := 2 * math.Pi / float64(n)
	hLen := n >> 1

	for k := max(hrmLo, 1); k <= hrmHi; k++ {
		phaseInc := float64(k) * inc
		for i := 0; i <= hLen; i++ {
			dst[i] += T(math.Cos(float64(i) * phaseInc))
		}
	}
}

// accumSaw writes dst[1..n/2-1].
func accumSaw[T core.Real](dst []T, hrmLo, hrmHi int) {
	n := len(dst)
	inc := 2 * math.Pi / float64(n)
	hLen := n >> 1

	for k := max(hrmLo, 1); k <= hrmHi; k++ {
		h := float64(k)
		phaseInc := h * inc
		amp := sawFactor / h
		for i := 1; i < hLen; i++ {
			dst[i] += T(amp * math.Sin(float64(i)*phaseInc))
		}
	}
}

// accumSquare writes dst[1..n/4].
func accumSquare[T core.Real](dst []T, hrmLo, hrmHi int) {
	n := len(dst)
	inc := 2 * math.Pi / float64(n)
	qLen := n >> 2

	for k := max(hrmLo, 1) | 1; k <= hrmHi; k += 2 {
		h := float64(k)
		phaseInc := h * inc
		amp := sqrFactor / h
		for i := 1; i <= qLen; i++ {
			dst[i] += T(amp * math.Sin(float64(i)*phaseInc))
		}
	}
}

// accumTriangle writes dst[1..n/4]. Harmonic k carries a positive sign for
// k%4 == 1 and a negative one for k%4 == 3.
func accumTriangle[T core.Real](dst []T, hrmLo, hrmHi int) {
	n := len(dst)
	inc := 2 * math.Pi / float64(n)
	qLen := n >> 2

	lo := max(hrmLo, 1) | 1
	factor := triFactor
	if lo&2 != 0 {
		factor = -triFactor
	}

	for k := lo; k <= hrmHi; k += 2 {
		h := float64(k)
		phaseInc := h * inc
		amp := factor / (h * h)
		factor = -factor
		for i := 1; i <= qLen; i++ {
			dst[i] += T(amp * math.Sin(float64(i)*phaseInc))
		}
	}
}
