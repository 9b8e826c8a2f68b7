package repository

import "context"

// CacheRepository stores serialized results under a request hash.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
