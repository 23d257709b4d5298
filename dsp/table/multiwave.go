package table

import "github.com/cwbudde/algo-wavetable/dsp/core"

// MultiWave fills orders consecutive tables of length samples in dst with
// band-limited copies of w. Order k holds harmonics [1, 2^k]:
//
//	order  band added  total
//	0      1           1
//	1      2           1-2
//	2      3-4         1-4
//	3      5-8         1-8
//
// Each order starts as a copy of the one below and only the new band is
// summed in. Summation is additive, so dst[:length] must be zeroed (or
// deliberately seeded) by the caller. orders <= 1 only seeds order 0.
func MultiWave[T core.Real](dst []T, length, orders int, w Wave) {
	Sum(w, dst[:length], 1, 1)

	hrmLo, hrmHi := 2, 2
	for k := 1; k < orders; k++ {
		prev := dst[(k-1)*length : k*length]
		cur := dst[k*length : (k+1)*length]
		copy(cur, prev)
		Sum(w, cur, hrmLo, hrmHi)

		hrmLo = hrmHi + 1
		hrmHi <<= 1
	}
}
