package service

import "errors"

// Error taxonomy shared by the HTTP controllers and the chat transport.
// Controllers translate these to status codes; anything else is treated
// as a persistence failure (5xx).
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
)
