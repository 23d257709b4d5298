// Package table builds band-limited waveform tables by harmonic summation.
//
// Each summation routine computes only the unique part of one period and
// completes the table from the waveform's symmetry:
//
//	impulse:  cosine series, reflected about the half period (DB)
//	saw:      sine series, point reflected about the half period (DP)
//	square:   odd sine series, quarter reflected then negated (DBQP)
//	triangle: odd sine series with alternating sign, DBQP
//
// Summation is additive, so a table can be grown band by band. [MultiWave]
// and [Stack] use this to build a set of tables whose harmonic ceiling
// doubles with every order, for selecting an alias-free table by pitch.
//
// All phase and amplitude arithmetic runs in float64 whatever the element
// type of the destination. Lengths must be powers of two; nothing on the
// build path checks this except [NewStack].
package table
