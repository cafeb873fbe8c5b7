package ir

import "errors"

var (
	ErrPath        = errors.New("path error")
	ErrUnsupported = errors.New("unsupported value")
)
