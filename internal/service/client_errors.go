package service

import "errors"

var (
	// ErrNotAuthenticated is returned by client operations that need a live
	// session when the client is in the logged-out state.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrListingUnavailable is returned when the server is unreachable and
	// no cached avatar listing exists to fall back to.
	ErrListingUnavailable = errors.New("avatar listing unavailable")
)
