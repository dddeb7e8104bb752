package store

import (
	"context"
	"fmt"

	"github.com/aivahq/aiva/internal/config"
	"github.com/aivahq/aiva/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the client service layer.
type ClientStorages struct {
	// KVStorage is the SQLite-backed key-value store that holds the session
	// snapshot and the cached avatar listing.
	KVStorage ClientStorage
}

// NewClientStorages initialises the client storage layer: it opens (and, if
// needed, creates) the SQLite file at cfg.Path and prepares the kv table.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	kv, err := NewLocalKVStorage(ctx, db, logger)
	if err != nil {
		return nil, fmt.Errorf("local storage initialisation error: %w", err)
	}

	return &ClientStorages{
		KVStorage: kv,
	}, nil
}
