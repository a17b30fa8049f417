package demo

import "errors"

var (
	// ErrUnknownExample is returned when no example has the requested name.
	ErrUnknownExample = errors.New("demo: unknown example")

	// ErrDuplicateExample is returned when an example name is registered twice.
	ErrDuplicateExample = errors.New("demo: example already registered")
)
