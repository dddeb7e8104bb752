package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aivahq/aiva/internal/service"
	"github.com/aivahq/aiva/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockAvatarService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}

func TestRoutes_ProtectedEndpointsRequireAuth(t *testing.T) {
	avatars := &mockAvatarService{
		getAvatarsFn: func(_ context.Context, _ models.Category) ([]models.Avatar, error) {
			return nil, nil
		},
	}
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsInvalid
		},
	}
	router := newTestHandler(t, auth, avatars).Init()

	tests := []struct {
		name   string
		method string
		target string
		want   int
	}{
		{"profile requires token", http.MethodGet, "/api/auth/me", http.StatusUnauthorized},
		{"avatar creation requires token", http.MethodPost, "/api/avatars", http.StatusUnauthorized},
		{"avatar listing is public", http.MethodGet, "/api/avatars", http.StatusOK},
		{"health is public", http.MethodGet, "/health", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRoutes_TraceIDHeaderIsSet(t *testing.T) {
	avatars := &mockAvatarService{
		getAvatarsFn: func(_ context.Context, _ models.Category) ([]models.Avatar, error) {
			return nil, nil
		},
	}
	router := newTestHandler(t, &mockAuthService{}, avatars).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/avatars", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Aiva-Trace-Id"))
}

func TestRoutes_IncomingTraceIDIsPreserved(t *testing.T) {
	avatars := &mockAvatarService{
		getAvatarsFn: func(_ context.Context, _ models.Category) ([]models.Avatar, error) {
			return nil, nil
		},
	}
	router := newTestHandler(t, &mockAuthService{}, avatars).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/avatars", nil)
	req.Header.Set("X-Aiva-Trace-Id", "trace-42")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get("X-Aiva-Trace-Id"))
}
