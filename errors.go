package marshal

import (
	"errors"
)

var (
	// ErrNotRegistered is returned when a codec name has no registered
	// Marshaller.
	ErrNotRegistered = errors.New("codec not registered")
)
