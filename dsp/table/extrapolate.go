package table

import (
	"github.com/cwbudde/algo-wavetable/dsp/core"
	"github.com/cwbudde/algo-wavetable/internal/arr"
)

// Extrapolate completes dst from its unique region according to s.
func Extrapolate[T core.Real](dst []T, s Symmetry) {
	switch s {
	case SymmetryDB:
		ExtrapolateDB(dst)
	case SymmetryDP:
		ExtrapolateDP(dst)
	case SymmetryDBQP:
		ExtrapolateDBQP(dst)
	}
}

// ExtrapolateDB sets dst[n-i] = dst[i] for 0 < i < n/2. dst[0] and
// dst[n/2] are left as computed.
func ExtrapolateDB[T core.Real](dst []T) {
	if len(dst) < 2 {
		return
	}
	arr.MirrorR(dst[1:])
}

// ExtrapolateDP sets dst[n-i] = -dst[i] for 0 < i < n/2.
func ExtrapolateDP[T core.Real](dst []T) {
	if len(dst) < 2 {
		return
	}
	arr.MirrorDP(dst[1:])
}

// ExtrapolateDBQP sets dst[n/2-i] = dst[i] for 0 < i < n/4, then
// dst[n/2+i] = -dst[i] for 0 <= i < n/2.
func ExtrapolateDBQP[T core.Real](dst []T) {
	h := len(dst) >> 1
	if h < 1 {
		return
	}
	arr.MirrorR(dst[1:h])
	arr.MirrorDQ(dst)
}
