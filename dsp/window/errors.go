package window

import "errors"

var (
	ErrEmpty       = errors.New("window: coefficients must not be empty")
	ErrZeroGain    = errors.New("window: coherent gain is zero")
	ErrUnknownType = errors.New("window: unknown type")
)
