package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aivahq/aiva/internal/config"
	"github.com/aivahq/aiva/internal/logger"
	"github.com/aivahq/aiva/internal/service"
	"github.com/aivahq/aiva/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signUpFn      func(ctx context.Context, name, email, password string) (models.User, error)
	loginFn       func(ctx context.Context, email, password string) (models.User, error)
	profileFn     func(ctx context.Context, userID uuid.UUID) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, name, email, password string) (models.User, error) {
	return m.signUpFn(ctx, name, email, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) Profile(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return m.profileFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock AvatarService
// ─────────────────────────────────────────────

type mockAvatarService struct {
	getAvatarsFn   func(ctx context.Context, category models.Category) ([]models.Avatar, error)
	createAvatarFn func(ctx context.Context, avatar models.Avatar) (models.Avatar, error)
}

func (m *mockAvatarService) GetAvatars(ctx context.Context, category models.Category) ([]models.Avatar, error) {
	return m.getAvatarsFn(ctx, category)
}

func (m *mockAvatarService) CreateAvatar(ctx context.Context, avatar models.Avatar) (models.Avatar, error) {
	return m.createAvatarFn(ctx, avatar)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks.
func newTestHandler(t *testing.T, auth service.AuthService, avatars service.AvatarService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:   auth,
		AvatarService: avatars,
	}
	return NewHandler(svcs, config.Server{ClientOrigin: "http://localhost:5173"}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeErrorMessage extracts the "message" field of an error response body.
func decodeErrorMessage(t *testing.T, body []byte) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Message
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// validUser is a convenience fixture used across multiple tests.
var validUser = models.User{
	ID:    uuid.MustParse("7b8e1fd0-7d8c-4f65-94b4-05adfa149b23"),
	Name:  "Alice",
	Email: "alice@example.com",
	Plan:  models.PlanFree,
}
