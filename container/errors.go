package container

import "errors"

var (
	ErrEmpty      = errors.New("container is empty")
	ErrOutOfRange = errors.New("position out of range")
)
