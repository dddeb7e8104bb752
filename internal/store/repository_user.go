package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aivahq/aiva/internal/logger"
	"github.com/aivahq/aiva/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs the PostgreSQL-backed [UserRepository].
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new user record. The unique index on lower(email)
// makes the database the arbiter of duplicates: a concurrent signup with the
// same address in any letter case loses with [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	row := r.db.QueryRowContext(ctx, createUser,
		user.ID, user.Name, user.Email, user.Password,
		user.Plan, user.Credits, user.AvatarCount)

	var created models.User
	if err := row.Scan(
		&created.ID, &created.Name, &created.Email, &created.Password,
		&created.Plan, &created.Credits, &created.AvatarCount,
		&created.CreatedAt, &created.UpdatedAt,
	); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			r.logger.Debug().Str("func", "*userRepository.CreateUser").Msg("duplicate email rejected by unique index")
			return models.User{}, ErrEmailAlreadyExists
		}

		r.logger.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByEmail looks up a user by email, compared case-insensitively.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Scan(
		&found.ID, &found.Name, &found.Email, &found.Password,
		&found.Plan, &found.Credits, &found.AvatarCount,
		&found.CreatedAt, &found.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		r.logger.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindUserByID looks up a user by its identifier.
func (r *userRepository) FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := row.Scan(
		&found.ID, &found.Name, &found.Email, &found.Password,
		&found.Plan, &found.Credits, &found.AvatarCount,
		&found.CreatedAt, &found.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		r.logger.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
