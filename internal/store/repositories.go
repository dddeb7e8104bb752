package store

import (
	"fmt"

	"github.com/aivahq/aiva/internal/logger"
)

// Repositories groups all server-side repositories into a single value that
// can be passed to the service layer.
type Repositories struct {
	UserRepository   UserRepository
	AvatarRepository AvatarRepository
}

// NewRepositories initialises the server storage layer: it runs pending
// schema migrations on db and wires the repositories to it.
func NewRepositories(db *DB, logger *logger.Logger) (*Repositories, error) {
	logger.Info().Msg("creating new repositories...")

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Repositories{
		UserRepository:   NewUserRepository(db, logger),
		AvatarRepository: NewAvatarRepository(db, logger),
	}, nil
}
