package auth

import "errors"

var (
	// ErrNoToken is returned when the request carries no credential.
	// Absence is an expected input, not a server fault.
	ErrNoToken = errors.New("no token provided")

	// ErrTokenInvalid is returned for malformed tokens or bad signatures.
	ErrTokenInvalid = errors.New("token is not valid")

	// ErrTokenExpired is returned when the token's expiry has passed.
	// HTTP responses collapse this with ErrTokenInvalid; the distinction
	// exists for internal classification only.
	ErrTokenExpired = errors.New("token has expired")

	// ErrDenied is returned when a valid identity lacks ownership of the
	// target resource.
	ErrDenied = errors.New("not authorized")
)
