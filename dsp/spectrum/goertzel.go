package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavetable/dsp/core"
)

// Goertzel evaluates a single harmonic of a table without a full FFT.
//
// The analyzer accumulates state across ProcessBlock calls; Amplitude is
// meaningful once exactly one period of length samples has been processed.
type Goertzel struct {
	harmonic int
	length   int
	coeff    float64
	s0, s1   float64
}

// NewGoertzel creates an analyzer for harmonic k of a period of length
// samples.
func NewGoertzel(k, length int) (*Goertzel, error) {
	if length < 2 {
		return nil, fmt.Errorf("goertzel: length must be >= 2: %d", length)
	}

	if k < 0 || k > length/2 {
		return nil, fmt.Errorf("%w: %d for length %d", ErrInvalidHarmonic, k, length)
	}

	return &Goertzel{
		harmonic: k,
		length:   length,
		coeff:    2 * math.Cos(2*math.Pi*float64(k)/float64(length)),
	}, nil
}

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
}

// ProcessBlock updates the internal state with a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
}

// Power returns |X[k]|^2 of the processed samples.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Amplitude returns the harmonic's amplitude on the same scale as
// [Harmonics].
func (g *Goertzel) Amplitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}

	a := 2 * math.Sqrt(p) / float64(g.length)
	if g.harmonic == 0 || 2*g.harmonic == g.length {
		a /= 2
	}

	return a
}

// Harmonic returns the analyzed harmonic number.
func (g *Goertzel) Harmonic() int { return g.harmonic }

// HarmonicAmplitude measures harmonic k of one period stored in tbl.
func HarmonicAmplitude[T core.Real](tbl []T, k int) (float64, error) {
	g, err := NewGoertzel(k, len(tbl))
	if err != nil {
		return 0, err
	}

	buf := make([]float64, len(tbl))
	for i, v := range tbl {
		buf[i] = float64(v)
	}
	g.ProcessBlock(buf)

	return g.Amplitude(), nil
}
