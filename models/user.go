package models

import (
	"time"

	"github.com/google/uuid"
)

// Plan is the subscription tier of a user account.
type Plan string

// Subscription tiers. New accounts start on PlanFree.
const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
	PlanPro     Plan = "pro"
)

// Valid reports whether p is one of the known subscription tiers.
func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanPremium, PlanPro:
		return true
	}
	return false
}

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned at creation.
	ID uuid.UUID `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique login identifier of the account.
	// It is stored and compared lower-cased so uniqueness is
	// case-insensitive.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is excluded from
	// every JSON serialization of the entity.
	Password string `json:"-"`

	// Plan is the subscription tier of the account. Defaults to PlanFree.
	Plan Plan `json:"plan"`

	// Credits is the non-negative credit balance of the account.
	Credits int `json:"credits"`

	// AvatarCount is the number of avatars the user has published.
	AvatarCount int `json:"avatarCount"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last mutation of the record.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
