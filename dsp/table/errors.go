package table

import "errors"

var (
	ErrInvalidLength  = errors.New("table: length must be a power of two >= 4")
	ErrInvalidOrders  = errors.New("table: order count out of range")
	ErrUnknownWave    = errors.New("table: unknown wave")
	ErrInvalidPerLine = errors.New("table: values per line must be > 0")
)
