// Package errs holds the sentinel errors the service and repo layers return
// for expected business outcomes. Controllers map them to HTTP statuses.
package errs

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrBadCredentials     = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("invalid input")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrThrottled          = errors.New("too many login attempts")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
