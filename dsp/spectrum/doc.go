// Package spectrum measures the harmonic content of single-period tables.
//
// [Harmonics] runs one forward FFT over a whole table and reports the
// amplitude of every harmonic, scaled so that a unit sinusoid at harmonic k
// reads 1 at index k. [Goertzel] evaluates one harmonic at a time.
package spectrum
