package types

import "errors"

// Domain errors. Callers match them with errors.Is; most are returned
// wrapped with the offending value.
var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
)
