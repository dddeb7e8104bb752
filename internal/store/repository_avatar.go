package store

import (
	"context"
	"fmt"

	"github.com/aivahq/aiva/internal/logger"
	"github.com/aivahq/aiva/models"
	"github.com/google/uuid"
)

type avatarRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAvatarRepository constructs the PostgreSQL-backed [AvatarRepository].
func NewAvatarRepository(db *DB, logger *logger.Logger) AvatarRepository {
	logger.Debug().Msg("AvatarRepository created")
	return &avatarRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAvatar inserts a new marketplace listing.
func (r *avatarRepository) CreateAvatar(ctx context.Context, avatar models.Avatar) (models.Avatar, error) {
	if avatar.ID == uuid.Nil {
		avatar.ID = uuid.New()
	}

	row := r.db.QueryRowContext(ctx, createAvatar,
		avatar.ID, avatar.Name, avatar.Creator, avatar.Likes, avatar.Downloads,
		avatar.Price, avatar.Category, avatar.Description, avatar.ImageURL)

	var created models.Avatar
	if err := row.Scan(
		&created.ID, &created.Name, &created.Creator, &created.Likes, &created.Downloads,
		&created.Price, &created.Category, &created.Description, &created.ImageURL,
		&created.CreatedAt, &created.UpdatedAt,
	); err != nil {
		r.logger.Err(err).Str("func", "*avatarRepository.CreateAvatar").Msg("error: inserting avatar")
		return models.Avatar{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetAvatars returns listings newest first, optionally filtered by category.
// An empty category means no filter.
func (r *avatarRepository) GetAvatars(ctx context.Context, category models.Category) ([]models.Avatar, error) {
	query, args, err := buildGetAvatarsQuery(category)
	if err != nil {
		r.logger.Err(err).Str("func", "*avatarRepository.GetAvatars").Msg("error: building listing query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*avatarRepository.GetAvatars").Msg("error: executing listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	avatars := make([]models.Avatar, 0)
	for rows.Next() {
		var a models.Avatar
		if err = rows.Scan(
			&a.ID, &a.Name, &a.Creator, &a.Likes, &a.Downloads,
			&a.Price, &a.Category, &a.Description, &a.ImageURL,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			r.logger.Err(err).Str("func", "*avatarRepository.GetAvatars").Msg("error: scanning avatar row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		avatars = append(avatars, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return avatars, nil
}

// CountAvatars reports how many listings exist.
func (r *avatarRepository) CountAvatars(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, countAvatars).Scan(&count); err != nil {
		r.logger.Err(err).Str("func", "*avatarRepository.CountAvatars").Msg("error: counting avatars")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}
