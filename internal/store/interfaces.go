package store

import (
	"context"

	"github.com/aivahq/aiva/models"
	"github.com/google/uuid"
)

// UserRepository is the persistence boundary for user accounts. Emails are
// stored as given but compared case-insensitively, so two registrations that
// differ only in letter case target the same account.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
}

// AvatarRepository is the persistence boundary for marketplace avatars.
type AvatarRepository interface {
	CreateAvatar(ctx context.Context, avatar models.Avatar) (models.Avatar, error)
	GetAvatars(ctx context.Context, category models.Category) ([]models.Avatar, error)
	CountAvatars(ctx context.Context) (int64, error)
}
