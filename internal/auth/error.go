package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for both unknown usernames and wrong
	// passwords so that credential existence is not distinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMissingToken   = errors.New("missing authorization header")
	ErrMalformedToken = errors.New("invalid authorization header format")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenStale     = errors.New("token predates last password change")

	ErrPasswordTooShort = errors.New("new password must be at least 8 characters")
	ErrPasswordReused   = errors.New("new password must be different from the old password")
)
