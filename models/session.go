package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the client-side snapshot of an authenticated session.
//
// It is what the client persists in its local key-value storage after a
// successful login or signup so the session survives application restarts.
// The server never stores this structure; the token alone is the server-side
// proof of authentication.
type Session struct {
	// Token is the signed session token string issued by the server.
	Token string `json:"token"`

	// User is a denormalized copy of the account record at login time.
	// The password hash is excluded by the User JSON serialization rules.
	User User `json:"user"`

	// Timestamp records when this snapshot was written.
	Timestamp time.Time `json:"timestamp"`
}

// Complete reports whether the snapshot carries both the token and the user
// identity required to consider a restored session authenticated.
func (s Session) Complete() bool {
	return s.Token != "" && s.User.ID != uuid.Nil
}
