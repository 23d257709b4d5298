package table

import (
	"fmt"

	"github.com/cwbudde/algo-wavetable/dsp/core"
)

// Stack is a multi-order set of band-limited tables of one waveform.
//
// Order k contains harmonics [1, 2^k]. Tables are read-only after
// construction and may be shared between any number of readers.
type Stack[T core.Real] struct {
	wave   Wave
	length int
	orders int
	data   []T
	cfg    core.ProcessorConfig
}

// NewStack builds orders tables of length samples for w. length must be a
// power of two >= 4 and orders must lie in [1, log2(length)] so the
// richest order stays within [MaxHarmonics].
func NewStack[T core.Real](w Wave, length, orders int, opts ...core.ProcessorOption) (*Stack[T], error) {
	if !w.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownWave, int(w))
	}

	if err := ValidateLength(length); err != nil {
		return nil, err
	}

	if orders < 1 || orders > core.Log2(length) {
		return nil, fmt.Errorf("%w: %d not in [1, %d] for length %d",
			ErrInvalidOrders, orders, core.Log2(length), length)
	}

	s := &Stack[T]{
		wave:   w,
		length: length,
		orders: orders,
		data:   make([]T, length*orders),
		cfg:    core.ApplyProcessorOptions(opts...),
	}
	MultiWave(s.data, length, orders, w)

	return s, nil
}

// ValidateLength reports whether n is usable as a full-period table length.
func ValidateLength(n int) error {
	if n < 4 || !core.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	return nil
}

// Wave returns the waveform family of the stack.
func (s *Stack[T]) Wave() Wave { return s.wave }

// Len returns the number of samples per table.
func (s *Stack[T]) Len() int { return s.length }

// Orders returns the number of tables.
func (s *Stack[T]) Orders() int { return s.orders }

// SampleRate returns the playback rate used by [Stack.Select].
func (s *Stack[T]) SampleRate() float64 { return s.cfg.SampleRate }

// Data returns all tables back to back, order 0 first.
func (s *Stack[T]) Data() []T { return s.data }

// Table returns the table for order k. It panics if k is out of range.
func (s *Stack[T]) Table(k int) []T {
	return s.data[k*s.length : (k+1)*s.length : (k+1)*s.length]
}

// MaxHarmonic returns the harmonic ceiling of order k.
func (s *Stack[T]) MaxHarmonic(k int) int {
	return 1 << k
}

// Select returns the richest order whose harmonic ceiling played at freqHz
// stays below Nyquist. Order 0 is returned when even the fundamental does
// not fit.
func (s *Stack[T]) Select(freqHz float64) int {
	nyquist := s.cfg.Nyquist()

	k := 0
	for k+1 < s.orders && freqHz*float64(s.MaxHarmonic(k+1)) < nyquist {
		k++
	}

	return k
}
