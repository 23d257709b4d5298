package window

import (
	"math"

	"github.com/cwbudde/algo-wavetable/dsp/core"
)

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the two-sided half-power main lobe width in bins.
	Bandwidth3dB float64
	// ScallopLossdB is the response half a bin off centre relative to DC.
	ScallopLossdB float64
}

// CoherentGain returns sum(w) / len(w).
func CoherentGain[T core.Real](w []T) (float64, error) {
	if len(w) == 0 {
		return 0, ErrEmpty
	}

	sum := 0.0
	for _, v := range w {
		sum += float64(v)
	}

	return sum / float64(len(w)), nil
}

// EquivalentNoiseBandwidth returns N * sum(w^2) / sum(w)^2 in bins.
func EquivalentNoiseBandwidth[T core.Real](w []T) (float64, error) {
	if len(w) == 0 {
		return 0, ErrEmpty
	}

	sum, sumSq := 0.0, 0.0
	for _, v := range w {
		f := float64(v)
		sum += f
		sumSq += f * f
	}

	if sum == 0 {
		return 0, ErrZeroGain
	}

	return float64(len(w)) * sumSq / (sum * sum), nil
}

// Analyze computes the spectral properties of coeffs by direct DFT
// evaluation.
func Analyze[T core.Real](coeffs []T) (Analysis, error) {
	cg, err := CoherentGain(coeffs)
	if err != nil {
		return Analysis{}, err
	}

	enbw, err := EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		return Analysis{}, err
	}

	n := float64(len(coeffs))
	dcRef := dftMagSq(coeffs, 0)

	return Analysis{
		CoherentGain:  cg,
		ENBW:          enbw,
		Bandwidth3dB:  2 * halfPowerFreq(coeffs, dcRef) * n,
		ScallopLossdB: core.LinearToDB(math.Sqrt(dftMagSq(coeffs, 0.5/n) / dcRef)),
	}, nil
}

// dftMagSq evaluates |DFT(freq)|^2 at a normalised frequency in [0, 0.5].
func dftMagSq[T core.Real](coeffs []T, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq
	for k, c := range coeffs {
		s, co := math.Sincos(w * float64(k))
		re += float64(c) * co
		im -= float64(c) * s
	}

	return re*re + im*im
}

// halfPowerFreq bisects [0, 0.5] for the frequency where the response
// falls to half the DC power.
func halfPowerFreq[T core.Real](coeffs []T, dcRef float64) float64 {
	lo, hi := 0.0, 0.5
	for i := 0; i < 60; i++ {
		mid := (lo + hi) / 2
		if dftMagSq(coeffs, mid)/dcRef > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}
