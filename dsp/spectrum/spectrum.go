package spectrum

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavetable/dsp/core"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Harmonics returns the amplitude of harmonics 0..n/2 of a single-period
// table of n samples. Index 0 is the DC offset, index n/2 the Nyquist
// component; both are scaled like a cosine so a constant 1 reads 1.
func Harmonics[T core.Real](tbl []T) ([]float64, error) {
	n := len(tbl)
	if n < 2 || !core.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan for %d points: %w", n, err)
	}

	in := make([]complex128, n)
	for i, v := range tbl {
		in[i] = complex(float64(v), 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	amps := Magnitude(out[:n/2+1])
	vecmath.ScaleBlockInPlace(amps, 2/float64(n))
	amps[0] /= 2
	amps[n/2] /= 2

	return amps, nil
}

// HighestHarmonic returns the highest non-DC index of amps whose value
// exceeds threshold, or 0 if there is none.
func HighestHarmonic(amps []float64, threshold float64) int {
	for k := len(amps) - 1; k > 0; k-- {
		if amps[k] > threshold {
			return k
		}
	}
	return 0
}
