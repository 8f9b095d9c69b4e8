// Package sentinel holds the domain errors shared by storage and workflows.
// Callers wrap them with context and match with errors.Is.
package sentinel

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrInvalidInput   = errors.New("invalid input")
)
