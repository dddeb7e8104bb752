package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the aiva API.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage holds local storage settings for the client.
type ClientStorage struct {
	// Path is the SQLite file holding the session snapshot and the avatar
	// cache.
	Path string
}

// ClientWorkers holds settings for the client background workers.
type ClientWorkers struct {
	// CacheRefreshInterval is how often the marketplace listing cache is
	// refreshed in the background. A negative value disables the worker.
	CacheRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport settings.
	Adapter ClientAdapter
	// Storage contains client local storage settings.
	Storage ClientStorage
	// Workers contains background worker settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      cfg.Client.ServerURL,
			RequestTimeout: cfg.Client.RequestTimeout,
		},
		Storage: ClientStorage{
			Path: cfg.Client.StoragePath,
		},
		Workers: ClientWorkers{
			CacheRefreshInterval: cfg.Client.CacheRefreshInterval,
		},
	}

	return clientCfg, clientCfg.validate()
}
