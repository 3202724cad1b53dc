package entity

import "errors"

var (
	// Event errors
	ErrEventNotFound   = errors.New("event not found")
	ErrInvalidEvent    = errors.New("invalid event")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownSelector = errors.New("unknown selector")

	// Auth errors
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrSessionRevoked = errors.New("session revoked")
)
