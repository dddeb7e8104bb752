// Package adapter provides the transport layer for communicating with the
// marketplace server.
//
// The primary abstraction is [ServerGateway], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerGateway]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/aivahq/aiva/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_gateway_mock.go -package=mock

// ServerGateway defines transport-agnostic communication with the marketplace
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerGateway interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called after a successful
	// SignUp or Login, and with an empty string on logout.
	SetToken(token string)

	// Token returns the bearer token currently stored in the gateway, or an
	// empty string if no token has been set yet.
	Token() string

	// SignUp registers a new account. On success it stores the returned
	// bearer token via SetToken and returns the issued token together with
	// the created user record.
	SignUp(ctx context.Context, name, email, password string) (models.AuthResponse, error)

	// Login authenticates an existing account. On success it stores the
	// returned bearer token via SetToken and returns the issued token
	// together with the user record.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	// Profile fetches the account record behind the stored token. Returns
	// [ErrUnauthorized] (wrapped) if the token is missing, expired, or
	// invalid.
	Profile(ctx context.Context) (models.User, error)

	// GetAvatars fetches the marketplace listing, optionally filtered by
	// category. The listing endpoint is public and does not require a token.
	GetAvatars(ctx context.Context, category models.Category) ([]models.Avatar, error)

	// CreateAvatar publishes a new listing. Requires a stored token.
	CreateAvatar(ctx context.Context, avatar models.Avatar) (models.Avatar, error)
}
