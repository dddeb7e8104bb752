package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aivahq/aiva/internal/adapter"
	"github.com/aivahq/aiva/internal/logger"
	"github.com/aivahq/aiva/internal/store"
	"github.com/aivahq/aiva/models"
)

// sessionStateKey is the key under which the session snapshot lives in the
// client's key-value storage. The value is a JSON document holding the token,
// the user record, and the snapshot timestamp.
const sessionStateKey = "aiva_auth_state"

type clientSessionService struct {
	storage store.ClientStorage
	gateway adapter.ServerGateway
	logger  *logger.Logger

	mu      sync.RWMutex
	session models.Session
}

// NewClientSessionService constructs the client session state machine. The
// returned service starts in the logged-out state; call Restore to pick up a
// previously persisted session.
func NewClientSessionService(storage store.ClientStorage, gateway adapter.ServerGateway, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		storage: storage,
		gateway: gateway,
		logger:  logger,
	}
}

func (s *clientSessionService) Restore(ctx context.Context) (models.Session, error) {
	raw, err := s.storage.Get(ctx, sessionStateKey)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return models.Session{}, nil
		}
		return models.Session{}, fmt.Errorf("reading session snapshot: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal([]byte(raw), &session); err != nil || !session.Complete() {
		// A corrupt or partial snapshot is treated as logged out, not as a
		// failure the user has to deal with.
		s.logger.Warn().Err(err).Msg("discarding unusable session snapshot")
		if delErr := s.storage.Delete(ctx, sessionStateKey); delErr != nil {
			s.logger.Err(delErr).Msg("failed to delete unusable session snapshot")
		}
		return models.Session{}, nil
	}

	s.setSession(session)
	return session, nil
}

func (s *clientSessionService) SignUp(ctx context.Context, name, email, password string) (models.Session, error) {
	auth, err := s.gateway.SignUp(ctx, name, email, password)
	if err != nil {
		return models.Session{}, err
	}

	return s.establish(ctx, auth)
}

func (s *clientSessionService) Login(ctx context.Context, email, password string) (models.Session, error) {
	auth, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, err
	}

	return s.establish(ctx, auth)
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	s.setSession(models.Session{})

	if err := s.storage.Delete(ctx, sessionStateKey); err != nil {
		return fmt.Errorf("deleting session snapshot: %w", err)
	}

	return nil
}

func (s *clientSessionService) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, s.session.Complete()
}

func (s *clientSessionService) RefreshProfile(ctx context.Context) (models.User, error) {
	if _, ok := s.Current(); !ok {
		return models.User{}, ErrNotAuthenticated
	}

	user, err := s.gateway.Profile(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			// The stored token has expired or been rejected. Drop to the
			// logged-out state so the UI returns to the login screen.
			s.logger.Info().Msg("stored token rejected by server, logging out")
			if logoutErr := s.Logout(ctx); logoutErr != nil {
				s.logger.Err(logoutErr).Msg("failed to clear rejected session")
			}
		}
		return models.User{}, err
	}

	s.mu.Lock()
	s.session.User = user
	session := s.session
	s.mu.Unlock()

	if err = s.persist(ctx, session); err != nil {
		s.logger.Err(err).Msg("failed to persist refreshed session snapshot")
	}

	return user, nil
}

// establish flips to the authenticated state for the given auth response and
// persists the snapshot. A persistence failure does not undo the login; the
// session simply won't survive a restart.
func (s *clientSessionService) establish(ctx context.Context, auth models.AuthResponse) (models.Session, error) {
	session := models.Session{
		Token:     auth.Token,
		User:      auth.User,
		Timestamp: time.Now(),
	}
	s.setSession(session)

	if err := s.persist(ctx, session); err != nil {
		s.logger.Err(err).Msg("failed to persist session snapshot")
	}

	return session, nil
}

func (s *clientSessionService) setSession(session models.Session) {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.gateway.SetToken(session.Token)
}

func (s *clientSessionService) persist(ctx context.Context, session models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding session snapshot: %w", err)
	}

	return s.storage.Put(ctx, sessionStateKey, string(raw))
}
