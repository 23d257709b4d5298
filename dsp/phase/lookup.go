package phase

import (
	"math"

	"github.com/cwbudde/algo-wavetable/dsp/core"
)

const (
	signMask  = 0x80000000
	phaseMask = 0x7fffffff
	oneBits   = 0x3f800000
)

// AtH returns the value at phase of a waveform whose first half is src.
// len(src) must be a power of two and fbits = 31 - log2(len(src)).
func AtH(src []float32, fbits, phase uint32) float32 {
	v := math.Float32bits(src[(phase&phaseMask)>>fbits])
	return math.Float32frombits(v | phase&signMask)
}

// AtQ returns the value at phase of a waveform whose first quarter is src.
// len(src) must be 2^b + 1 and fbits = 30 - b.
func AtQ(src []float32, fbits, phase uint32) float32 {
	dir := (phase >> 30) & 1
	i := (((phase ^ -dir) + (dir << fbits)) & phaseMask) >> fbits
	v := math.Float32bits(src[i])
	return math.Float32frombits(v | phase&signMask)
}

// Fraction returns the fractional part of phase in [0, 1) for a table of
// 2^bits entries. The result has 24 bits of precision.
func Fraction(bits, phase uint32) float32 {
	return math.Float32frombits(phase<<bits>>9|oneBits) - 1
}

// IncFactor returns the phase increment that advances one period per
// second at framesPerSec. Multiply by a frequency in Hz to get the
// increment for that frequency.
func IncFactor(framesPerSec float64) float32 {
	return float32(65536/framesPerSec) * 65536
}

// FBitsH returns the fbits for [AtH] over a half table of n entries.
func FBitsH(n int) uint32 {
	return uint32(31 - core.Log2(n))
}

// FBitsQ returns the fbits for [AtQ] over a quarter table of n = 2^b + 1
// entries.
func FBitsQ(n int) uint32 {
	return uint32(30 - core.Log2(n-1))
}
