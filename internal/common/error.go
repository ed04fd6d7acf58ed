// Package common defines shared constants and sentinel errors used across
// the docflow layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal    = errors.New("internal error")
	ErrNoCurrentUser = errors.New("no current user")

	// Strict approval mode errors.
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid state")
)
