package common

import "errors"

// parse errors
var (
	ErrInvalidInteger  = errors.New("invalid integer")
	ErrIntegerOverflow = errors.New("integer overflow")
	ErrInvalidAddress  = errors.New("invalid address")
	ErrInvalidHex      = errors.New("invalid hex")
)
