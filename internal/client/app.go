package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/aivahq/aiva/internal/adapter"
	"github.com/aivahq/aiva/internal/config"
	"github.com/aivahq/aiva/internal/logger"
	"github.com/aivahq/aiva/internal/service"
	"github.com/aivahq/aiva/internal/store"
	"github.com/aivahq/aiva/internal/tui"
	"github.com/aivahq/aiva/internal/workers"
)

// App is the client application: local storage, server gateway, services,
// background workers, and the terminal UI assembled from configuration.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp reads the client configuration and wires the full client stack.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	gateway := adapter.NewHTTPServerGateway(cfg.Adapter)
	services := service.NewClientServices(storages, gateway, log)

	ui, err := tui.New(services, log)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	jobs := workers.NewWorkers(
		workers.NewCacheRefreshWorker(services.AvatarService, cfg.Workers.CacheRefreshInterval, log),
	)

	return &App{services: services, tui: ui, workers: jobs, logger: log}, nil
}

// Run restores the persisted session, if any, and hands control to the
// terminal UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	session, err := a.services.SessionService.Restore(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if session.Complete() {
		a.logger.Info().Str("user", session.User.Email).Msg("session restored")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.workers.Run(ctx)

	if err := a.tui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	return nil
}
