package service

import (
	"context"

	"github.com/aivahq/aiva/models"
)

// ClientSessionService owns the client-side authentication state: the token,
// the cached user record, and the persisted snapshot that lets a session
// survive application restarts.
type ClientSessionService interface {
	// Restore loads the persisted session snapshot, if any. A missing,
	// corrupt, or incomplete snapshot silently yields the logged-out state;
	// Restore returns an error only when the storage itself fails.
	Restore(ctx context.Context) (models.Session, error)

	// SignUp registers a new account, flips to the authenticated state, and
	// persists the snapshot. Gateway errors are propagated unchanged so the
	// UI can display the server's message.
	SignUp(ctx context.Context, name, email, password string) (models.Session, error)

	// Login authenticates, flips to the authenticated state, and persists
	// the snapshot. Gateway errors are propagated unchanged.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// Logout clears the in-memory state and the persisted snapshot. It never
	// contacts the server; the token remains valid until natural expiry.
	Logout(ctx context.Context) error

	// Current returns the session and whether it is authenticated.
	Current() (models.Session, bool)

	// RefreshProfile re-fetches the user record behind the stored token and
	// updates the snapshot. A 401 from the server drops the session to the
	// logged-out state before the error is returned.
	RefreshProfile(ctx context.Context) (models.User, error)
}

// ClientAvatarService serves the marketplace listing to the UI, falling back
// to the locally cached copy when the server is unreachable.
type ClientAvatarService interface {
	// List fetches listings from the server, refreshing the local cache on
	// success. When the server cannot be reached the cached listing is
	// returned instead.
	List(ctx context.Context, category models.Category) ([]models.Avatar, error)

	// Publish creates a new listing on the server and invalidates the cache.
	Publish(ctx context.Context, avatar models.Avatar) (models.Avatar, error)
}
