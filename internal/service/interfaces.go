package service

import (
	"context"

	"github.com/aivahq/aiva/models"
	"github.com/google/uuid"
)

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	SignUp(ctx context.Context, name, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	Profile(ctx context.Context, userID uuid.UUID) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AvatarService handles the marketplace listing catalogue.
type AvatarService interface {
	GetAvatars(ctx context.Context, category models.Category) ([]models.Avatar, error)
	CreateAvatar(ctx context.Context, avatar models.Avatar) (models.Avatar, error)
}
