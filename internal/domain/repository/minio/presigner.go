package minio

import (
	"context"
	"time"
)

type Presigner interface {
	PresignPut(ctx context.Context, key string, ttl time.Duration) (string, error)
	PresignPost(ctx context.Context, key, contentType string, maxSize int64,
		ttl time.Duration) (string, map[string]string, error)
}
