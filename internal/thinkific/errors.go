package thinkific

import "errors"

// Common Thinkific API errors.
var (
	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when the client date or cookie data has expired.
	ErrUnauthorized = errors.New("unauthorized — refresh client date and cookie data")
	// ErrForbidden is returned when the account lacks access to the content.
	ErrForbidden = errors.New("forbidden — course not available to this account")
)
