package service

import "errors"

var (
	// ErrNotFound propagates unchanged to the HTTP boundary.
	ErrNotFound = errors.New("not found")

	// ErrInternal replaces any unexpected persistence failure after it has
	// been logged; no internal detail crosses the boundary.
	ErrInternal = errors.New("an error occurred on the server")
)
