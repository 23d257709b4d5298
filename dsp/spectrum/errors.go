package spectrum

import "errors"

var (
	ErrInvalidLength   = errors.New("spectrum: table length must be a power of two >= 2")
	ErrInvalidHarmonic = errors.New("spectrum: harmonic must lie in [0, length/2]")
)
