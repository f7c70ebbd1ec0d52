// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrNotFound indicates the referenced user or POI does not exist.
	ErrNotFound = errors.New("not found")

	// ErrBadCredentials indicates a wrong password for a privileged account.
	ErrBadCredentials = errors.New("bad credentials")

	// ErrInvalidToken indicates a malformed or unverifiable bearer token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrForbidden indicates an authenticated caller without the required
	// role or ownership.
	ErrForbidden = errors.New("forbidden")

	// ErrSelfDelete indicates an admin attempting to delete its own account.
	ErrSelfDelete = errors.New("self delete forbidden")

	// ErrConflict indicates a unique constraint violation (username taken).
	ErrConflict = errors.New("already exists")
)
