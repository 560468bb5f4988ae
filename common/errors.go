package common

import "errors"

var (
	ErrorInvalidValue    = errors.New("invalid value")
	ErrorEmptyInput      = errors.New("empty input")
	ErrorInvalidPi0      = errors.New("pi0 out of range")
	ErrorCalculateFailed = errors.New("calculate failed")
)
