package apperrors

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("session expired")
	ErrForbidden     = errors.New("forbidden")
	ErrNotLoggedIn   = errors.New("not logged in")
	ErrGateLocked    = errors.New("evaluation gate is locked")
	ErrRetryCooldown = errors.New("retry cooldown active")
	ErrRetryLocked   = errors.New("retry not available")
)
