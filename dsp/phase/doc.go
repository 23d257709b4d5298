// Package phase reads symmetric tables with a wrapping 32-bit phase.
//
// One period of a waveform maps to the full uint32 range. The top bits of a
// phase select the quadrant:
//
//	bit 31      sign (0 positive, 1 negative)
//	bit 30      direction for quarter tables (0 forward, 1 backward)
//	[30|29..b]  integer table index
//	[b-1..0]    fraction, b = fbits
//
// [AtH] reads a table holding the first half of a waveform whose second half
// is the negated first half. [AtQ] reads a table holding the first quarter
// plus the peak sample (2^n + 1 entries) of a waveform that is also
// reflected about the quarter period. Both inject the sign by OR-ing the
// phase's top bit into the IEEE-754 bit pattern of the stored magnitude, so
// stored values must be non-negative.
//
// The lookups do not branch, allocate or validate; compute fbits once with
// [FBitsH] or [FBitsQ] when the table is built.
package phase
