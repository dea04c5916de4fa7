// Package common defines shared constants and sentinel errors used across
// the gateway's server and CLI layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrSubjectNotFound is returned when claims are requested for a subject
	// the store no longer knows. Token issuance must abort on it.
	ErrSubjectNotFound = errors.New("subject not found")

	// ErrStoreUnavailable marks a transient failure of the credential store.
	// It is distinct from "not found" and from "inactive".
	ErrStoreUnavailable = errors.New("store unavailable")

	// External login errors.
	ErrUnknownScheme = errors.New("unknown identity provider scheme")
	ErrAuthFailed    = errors.New("external authentication failed")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
