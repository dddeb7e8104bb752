package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aivahq/aiva/internal/logger"
	"github.com/aivahq/aiva/internal/store"
	"github.com/aivahq/aiva/internal/validators"
	"github.com/aivahq/aiva/models"
)

// avatarService is the concrete implementation of AvatarService backed by an
// AvatarRepository.
type avatarService struct {
	avatarRepository store.AvatarRepository
	validator        validators.Validator
	logger           *logger.Logger
}

// NewAvatarService constructs a new AvatarService wired to the given
// AvatarRepository.
func NewAvatarService(avatarRepository store.AvatarRepository, logger *logger.Logger) AvatarService {
	return &avatarService{
		avatarRepository: avatarRepository,
		validator:        validators.NewMarketplaceValidator(),
		logger:           logger,
	}
}

// GetAvatars returns marketplace listings newest first. An empty category
// returns the whole catalogue; an unknown category is rejected.
func (s *avatarService) GetAvatars(ctx context.Context, category models.Category) ([]models.Avatar, error) {
	log := logger.FromContext(ctx)

	if category != "" {
		if err := s.validator.Validate(ctx, category); err != nil {
			log.Error().Err(err).Str("category", string(category)).Msg("unknown avatar category requested")
			return nil, ErrInvalidDataProvided
		}
	}

	avatars, err := s.avatarRepository.GetAvatars(ctx, category)
	if err != nil {
		log.Err(err).Msg("avatar listing failed")
		return nil, fmt.Errorf("avatar listing failed: %w", err)
	}

	return avatars, nil
}

// CreateAvatar publishes a new listing. Name and creator are required;
// missing price and category fall back to "Free" and Anime, and the
// popularity counters always start at zero.
func (s *avatarService) CreateAvatar(ctx context.Context, avatar models.Avatar) (models.Avatar, error) {
	log := logger.FromContext(ctx)

	avatar.Name = strings.TrimSpace(avatar.Name)
	avatar.Creator = strings.TrimSpace(avatar.Creator)

	if avatar.Price == "" {
		avatar.Price = "Free"
	}
	if avatar.Category == "" {
		avatar.Category = models.CategoryAnime
	}
	if err := s.validator.Validate(ctx, avatar); err != nil {
		log.Error().Err(err).Str("name", avatar.Name).Msg("invalid avatar data provided")
		return models.Avatar{}, ErrInvalidDataProvided
	}
	avatar.Likes = 0
	avatar.Downloads = 0

	created, err := s.avatarRepository.CreateAvatar(ctx, avatar)
	if err != nil {
		log.Err(err).Str("name", avatar.Name).Msg("avatar creation ended with error")
		return models.Avatar{}, fmt.Errorf("avatar creation ended with error: %w", err)
	}

	return created, nil
}
