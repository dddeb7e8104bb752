package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aivahq/aiva/internal/service"
	"github.com/aivahq/aiva/internal/store"
	"github.com/aivahq/aiva/internal/utils"
	"github.com/aivahq/aiva/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// signUp
// ─────────────────────────────────────────────

func TestSignUp_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		signUpFn: func(_ context.Context, name, email, password string) (models.User, error) {
			assert.Equal(t, "Alice", name)
			assert.Equal(t, "alice@example.com", email)
			assert.Equal(t, "secret123", password)
			return validUser, nil
		},
		createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}
	h := newTestHandler(t, auth, &mockAvatarService{})

	body := jsonBody(t, map[string]string{"name": "Alice", "email": "alice@example.com", "password": "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, signedToken, resp.Token)
	assert.Equal(t, validUser.ID, resp.User.ID)
}

func TestSignUp_PasswordNeverSerialised(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, _, _, _ string) (models.User, error) {
			u := validUser
			u.Password = "$2a$10$secret-hash"
			return u, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken("t"), nil
		},
	}
	h := newTestHandler(t, auth, &mockAvatarService{})

	body := jsonBody(t, map[string]string{"name": "Alice", "email": "alice@example.com", "password": "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
	assert.NotContains(t, rec.Body.String(), `"password"`)
}

func TestSignUp_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockAvatarService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUp_ValidationError(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, _, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(t, auth, &mockAvatarService{})

	body := jsonBody(t, map[string]string{"email": "alice@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name, email and password are required", decodeErrorMessage(t, rec.Body.Bytes()))
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, _, _, _ string) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	h := newTestHandler(t, auth, &mockAvatarService{})

	body := jsonBody(t, map[string]string{"name": "Alice", "email": "alice@example.com", "password": "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Email already registered", decodeErrorMessage(t, rec.Body.Bytes()))
}

func TestSignUp_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, _, _, _ string) (models.User, error) {
			return validUser, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	h := newTestHandler(t, auth, &mockAvatarService{})

	body := jsonBody(t, map[string]string{"name": "Alice", "email": "alice@example.com", "password": "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, password string) (models.User, error) {
			assert.Equal(t, "alice@example.com", email)
			return validUser, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}
	h := newTestHandler(t, auth, &mockAvatarService{})

	body := jsonBody(t, map[string]string{"email": "alice@example.com", "password": "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, signedToken, resp.Token)
}

func TestLogin_BadCredentialsAndMissingFieldsLookIdentical(t *testing.T) {
	badCreds := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	missingFields := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	var responses []string
	for _, auth := range []*mockAuthService{badCreds, missingFields} {
		h := newTestHandler(t, auth, &mockAvatarService{})

		body := jsonBody(t, map[string]string{"email": "alice@example.com", "password": "x"})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.login(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		responses = append(responses, rec.Body.String())
	}

	assert.Equal(t, responses[0], responses[1], "all login failures must share one generic body")
}

func TestLogin_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	}
	h := newTestHandler(t, auth, &mockAvatarService{})

	body := jsonBody(t, map[string]string{"email": "alice@example.com", "password": "x"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// profile
// ─────────────────────────────────────────────

func TestProfile_Success(t *testing.T) {
	auth := &mockAuthService{
		profileFn: func(_ context.Context, userID uuid.UUID) (models.User, error) {
			assert.Equal(t, validUser.ID, userID)
			return validUser, nil
		},
	}
	h := newTestHandler(t, auth, &mockAvatarService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	ctx := context.WithValue(req.Context(), utils.SubjectCtxKey, validUser.ID)
	rec := httptest.NewRecorder()

	h.profile(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, validUser.Email, resp.User.Email)
}

func TestProfile_NoSubjectInContext(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockAvatarService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()

	h.profile(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfile_VanishedUser(t *testing.T) {
	auth := &mockAuthService{
		profileFn: func(_ context.Context, _ uuid.UUID) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	h := newTestHandler(t, auth, &mockAvatarService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	ctx := context.WithValue(req.Context(), utils.SubjectCtxKey, uuid.New())
	rec := httptest.NewRecorder()

	h.profile(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeErrorMessage(t, rec.Body.Bytes()))
}
