package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ClientStorage is the low-level key-value storage on the client device. The
// session snapshot and the cached avatar listing both live here as JSON
// strings under well-known keys.
type ClientStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
