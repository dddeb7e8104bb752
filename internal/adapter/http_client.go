package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aivahq/aiva/internal/config"
	"github.com/aivahq/aiva/models"
	"github.com/go-resty/resty/v2"
)

type httpServerGateway struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerGateway constructs the HTTP/REST implementation of
// [ServerGateway] pointed at cfg.ServerURL.
func NewHTTPServerGateway(cfg config.ClientAdapter) ServerGateway {
	if cfg.ServerURL == "" {
		cfg.ServerURL = config.DefaultServerURL
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.ServerURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerGateway{client: cli}
}

func (h *httpServerGateway) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerGateway) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerGateway) SignUp(ctx context.Context, name, email, password string) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"name": name, "email": email, "password": password}).
		Post("/api/auth/signup")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode signup response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerGateway) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerGateway) Profile(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var profile models.ProfileResponse
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.User{}, fmt.Errorf("decode profile response: %w", err)
	}

	return profile.User, nil
}

func (h *httpServerGateway) GetAvatars(ctx context.Context, category models.Category) ([]models.Avatar, error) {
	req := h.client.R().SetContext(ctx)
	if category != "" {
		req.SetQueryParam("category", string(category))
	}

	resp, err := req.Get("/api/avatars")
	if err != nil {
		return nil, fmt.Errorf("avatar listing request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var listing models.AvatarsResponse
	if err = json.Unmarshal(resp.Body(), &listing); err != nil {
		return nil, fmt.Errorf("decode avatar listing response: %w", err)
	}

	return listing.Avatars, nil
}

func (h *httpServerGateway) CreateAvatar(ctx context.Context, avatar models.Avatar) (models.Avatar, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(avatar).
		Post("/api/avatars")
	if err != nil {
		return models.Avatar{}, fmt.Errorf("avatar creation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Avatar{}, err
	}

	var created models.AvatarResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Avatar{}, fmt.Errorf("decode avatar creation response: %w", err)
	}

	return created.Avatar, nil
}

func (h *httpServerGateway) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
