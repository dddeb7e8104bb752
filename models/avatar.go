package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is the marketplace category of an avatar.
type Category string

// Marketplace categories. Avatars created without an explicit category
// default to CategoryAnime.
const (
	CategoryAnime     Category = "Anime"
	CategoryRealistic Category = "Realistic"
	CategorySciFi     Category = "Sci-Fi"
	CategoryFantasy   Category = "Fantasy"
)

// Valid reports whether c is one of the known marketplace categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAnime, CategoryRealistic, CategorySciFi, CategoryFantasy:
		return true
	}
	return false
}

// Avatar represents a marketplace listing: a published avatar with its
// creator attribution, popularity counters, and pricing label.
type Avatar struct {
	// ID is the unique identifier of the listing, assigned at creation.
	ID uuid.UUID `json:"id"`

	// Name is the display name of the avatar.
	Name string `json:"name"`

	// Creator is the display name of the user who published the avatar.
	Creator string `json:"creator"`

	// Likes is the number of likes the listing has collected.
	Likes int `json:"likes"`

	// Downloads is the number of times the avatar was downloaded.
	Downloads int `json:"downloads"`

	// Price is a human-readable pricing label (e.g. "Free", "50 Credits").
	Price string `json:"price"`

	// Category is the marketplace category of the avatar.
	Category Category `json:"category"`

	// Description is an optional free-form description of the avatar.
	Description string `json:"description"`

	// ImageURL is an optional URL of the avatar's preview image.
	ImageURL string `json:"imageUrl"`

	// CreatedAt is the timestamp when the listing was published.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last mutation of the listing.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Avatar model.
func (a Avatar) TableName() string {
	return "avatars"
}
