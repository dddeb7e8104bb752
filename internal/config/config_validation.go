package config

// applyDefaults fills the fields an operator may leave unset. Secrets and
// the database DSN are deliberately excluded; their absence is a startup
// error, not something to paper over with a default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.ClientOrigin == "" {
		cfg.Server.ClientOrigin = DefaultClientOrigin
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}
	if cfg.Client.ServerURL == "" {
		cfg.Client.ServerURL = DefaultServerURL
	}
	if cfg.Client.StoragePath == "" {
		cfg.Client.StoragePath = DefaultStoragePath
	}
	if cfg.Client.RequestTimeout == 0 {
		cfg.Client.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Client.CacheRefreshInterval == 0 {
		cfg.Client.CacheRefreshInterval = DefaultCacheRefreshInterval
	}
}

// ValidateServer checks that the merged configuration satisfies the server
// startup invariants: without the token signing secret and the database DSN
// the process must not start.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// declared in errors.go otherwise.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.Path == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
