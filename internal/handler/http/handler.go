package http

import (
	"github.com/aivahq/aiva/internal/config"
	"github.com/aivahq/aiva/internal/logger"
	"github.com/aivahq/aiva/internal/service"
)

type Handler struct {
	services *service.Services

	// clientOrigin is the single browser origin allowed by the CORS policy.
	clientOrigin string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		clientOrigin: cfg.ClientOrigin,
		logger:       logger,
	}
}
