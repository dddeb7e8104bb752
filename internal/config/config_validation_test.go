package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsEmptyFields(t *testing.T) {
	cfg := &StructuredConfig{}

	cfg.applyDefaults()

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultClientOrigin, cfg.Server.ClientOrigin)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.Auth.TokenDuration)
	assert.Equal(t, DefaultServerURL, cfg.Client.ServerURL)
	assert.Equal(t, DefaultStoragePath, cfg.Client.StoragePath)
	assert.Equal(t, DefaultRequestTimeout, cfg.Client.RequestTimeout)
	assert.Equal(t, DefaultCacheRefreshInterval, cfg.Client.CacheRefreshInterval)

	// No defaults for secrets and the DSN.
	assert.Empty(t, cfg.Auth.TokenSignKey)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		Auth: Auth{
			TokenIssuer:   "custom-issuer",
			TokenDuration: time.Hour,
		},
		Server: Server{
			HTTPAddress: "localhost:9999",
		},
	}

	cfg.applyDefaults()

	assert.Equal(t, "custom-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
}

func TestValidateServer_MissingSignKey(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/aiva"}},
	}

	err := cfg.ValidateServer()

	require.ErrorIs(t, err, ErrNoTokenSignKey)
}

func TestValidateServer_MissingDSN(t *testing.T) {
	cfg := &StructuredConfig{
		Auth: Auth{TokenSignKey: "secret"},
	}

	err := cfg.ValidateServer()

	require.ErrorIs(t, err, ErrNoDatabaseDSN)
}

func TestValidateServer_Valid(t *testing.T) {
	cfg := &StructuredConfig{
		Auth:    Auth{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/aiva"}},
	}

	require.NoError(t, cfg.ValidateServer())
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg: ClientConfig{
				Adapter: ClientAdapter{ServerURL: "http://localhost:5000", RequestTimeout: 15 * time.Second},
				Storage: ClientStorage{Path: "aiva-client.db"},
			},
			wantErr: nil,
		},
		{
			name: "missing server url",
			cfg: ClientConfig{
				Adapter: ClientAdapter{RequestTimeout: 15 * time.Second},
				Storage: ClientStorage{Path: "aiva-client.db"},
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "zero timeout",
			cfg: ClientConfig{
				Adapter: ClientAdapter{ServerURL: "http://localhost:5000"},
				Storage: ClientStorage{Path: "aiva-client.db"},
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "missing storage path",
			cfg: ClientConfig{
				Adapter: ClientAdapter{ServerURL: "http://localhost:5000", RequestTimeout: 15 * time.Second},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
