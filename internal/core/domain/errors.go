package domain

import "errors"

var (
	// ErrUnauthenticated covers every identity failure: missing or malformed
	// bearer token, bad signature, expired token, or a token whose subject no
	// longer exists.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is an authenticated caller lacking the required role.
	// Deliberately distinct from ErrUnauthenticated (403 vs 401).
	ErrForbidden = errors.New("access forbidden")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrInvalidID    = errors.New("invalid user id")

	// ErrSelfDeletion guards admins from removing their own account.
	ErrSelfDeletion = errors.New("admins cannot delete their own account")

	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation marks malformed input fields; callers wrap it with
	// field-level detail.
	ErrValidation = errors.New("validation failed")

	// ErrAllBackendsFailed is returned when every inference backend in the
	// fallback chain has been tried and failed. It wraps the last failure.
	ErrAllBackendsFailed = errors.New("all inference backends failed")
)
