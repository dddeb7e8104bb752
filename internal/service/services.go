package service

import (
	"github.com/aivahq/aiva/internal/config"
	"github.com/aivahq/aiva/internal/logger"
	"github.com/aivahq/aiva/internal/store"
)

// Services groups all server-side services into a single value passed to the
// transport layer.
type Services struct {
	AuthService   AuthService
	AvatarService AvatarService
}

// NewServices wires the service layer to the storage layer.
func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(repositories.UserRepository, cfg.Auth, logger),
		AvatarService: NewAvatarService(repositories.AvatarRepository, logger),
	}
}
