package services

import "errors"

// Error taxonomy shared by all services. Handlers map these onto HTTP
// statuses with errors.Is; anything else is treated as a store failure.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrEmptySet   = errors.New("question set has no questions")
)
