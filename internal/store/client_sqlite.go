package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aivahq/aiva/internal/config"
	"github.com/aivahq/aiva/internal/logger"
)

// ErrKeyNotFound is returned by [ClientStorage.Get] when the requested key
// has never been stored or has been deleted.
var ErrKeyNotFound = errors.New("key not found in local storage")

const (
	createKVTable = `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

	getKVValue    = `SELECT value FROM kv WHERE key = ?;`
	putKVValue    = `INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value;`
	deleteKVValue = `DELETE FROM kv WHERE key = ?;`
)

// NewConnectSQLite opens the local SQLite database file, creating it if it
// does not yet exist.
func NewConnectSQLite(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.Path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == ":memory:" {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

type localKVStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalKVStorage constructs the SQLite-backed [ClientStorage] and ensures
// the kv table exists.
func NewLocalKVStorage(ctx context.Context, db *DB, logger *logger.Logger) (ClientStorage, error) {
	if _, err := db.ExecContext(ctx, createKVTable); err != nil {
		logger.Err(err).Str("func", "NewLocalKVStorage").Msg("error creating kv table")
		return nil, fmt.Errorf("error creating kv table: %w", err)
	}

	logger.Debug().Msg("LocalKVStorage created")
	return &localKVStorage{
		db:     db,
		logger: logger,
	}, nil
}

func (s *localKVStorage) Get(ctx context.Context, key string) (string, error) {
	var value string
	if err := s.db.QueryRowContext(ctx, getKVValue, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}

		s.logger.Err(err).Str("func", "*localKVStorage.Get").Str("key", key).Msg("error: reading value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *localKVStorage) Put(ctx context.Context, key string, value string) error {
	if _, err := s.db.ExecContext(ctx, putKVValue, key, value); err != nil {
		s.logger.Err(err).Str("func", "*localKVStorage.Put").Str("key", key).Msg("error: writing value")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *localKVStorage) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, deleteKVValue, key); err != nil {
		s.logger.Err(err).Str("func", "*localKVStorage.Delete").Str("key", key).Msg("error: deleting value")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
