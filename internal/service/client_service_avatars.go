package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aivahq/aiva/internal/adapter"
	"github.com/aivahq/aiva/internal/logger"
	"github.com/aivahq/aiva/internal/store"
	"github.com/aivahq/aiva/models"
)

// avatarCacheKey is the key under which the last successfully fetched full
// listing is cached in the client's key-value storage.
const avatarCacheKey = "aiva_avatar_cache"

type clientAvatarService struct {
	storage store.ClientStorage
	gateway adapter.ServerGateway
	logger  *logger.Logger
}

// NewClientAvatarService constructs the client-side avatar catalogue backed
// by the server with a local cache fallback.
func NewClientAvatarService(storage store.ClientStorage, gateway adapter.ServerGateway, logger *logger.Logger) ClientAvatarService {
	return &clientAvatarService{
		storage: storage,
		gateway: gateway,
		logger:  logger,
	}
}

func (s *clientAvatarService) List(ctx context.Context, category models.Category) ([]models.Avatar, error) {
	avatars, err := s.gateway.GetAvatars(ctx, category)
	if err == nil {
		// Only the unfiltered listing is cached so the fallback always has
		// the complete catalogue to filter locally.
		if category == "" {
			s.cache(ctx, avatars)
		}
		return avatars, nil
	}

	// Server-side rejections are not connectivity problems; do not mask them
	// with stale data.
	if errors.Is(err, adapter.ErrBadRequest) || errors.Is(err, adapter.ErrUnauthorized) {
		return nil, err
	}

	s.logger.Warn().Err(err).Msg("avatar listing fetch failed, trying local cache")

	cached, cacheErr := s.cached(ctx)
	if cacheErr != nil {
		if errors.Is(cacheErr, store.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrListingUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrListingUnavailable, cacheErr)
	}

	if category == "" {
		return cached, nil
	}

	filtered := make([]models.Avatar, 0, len(cached))
	for _, a := range cached {
		if a.Category == category {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

func (s *clientAvatarService) Publish(ctx context.Context, avatar models.Avatar) (models.Avatar, error) {
	created, err := s.gateway.CreateAvatar(ctx, avatar)
	if err != nil {
		return models.Avatar{}, err
	}

	// The cached listing no longer reflects the catalogue.
	if err = s.storage.Delete(ctx, avatarCacheKey); err != nil {
		s.logger.Err(err).Msg("failed to invalidate avatar cache")
	}

	return created, nil
}

func (s *clientAvatarService) cache(ctx context.Context, avatars []models.Avatar) {
	raw, err := json.Marshal(avatars)
	if err != nil {
		s.logger.Err(err).Msg("failed to encode avatar cache")
		return
	}
	if err = s.storage.Put(ctx, avatarCacheKey, string(raw)); err != nil {
		s.logger.Err(err).Msg("failed to write avatar cache")
	}
}

func (s *clientAvatarService) cached(ctx context.Context) ([]models.Avatar, error) {
	raw, err := s.storage.Get(ctx, avatarCacheKey)
	if err != nil {
		return nil, err
	}

	var avatars []models.Avatar
	if err = json.Unmarshal([]byte(raw), &avatars); err != nil {
		return nil, fmt.Errorf("decoding avatar cache: %w", err)
	}

	return avatars, nil
}
