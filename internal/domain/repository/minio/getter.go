package minio

import (
	"context"
	"errors"
	"io"

	"guestlens/internal/domain/entity"
)

// ErrObjectNotFound is returned by Getter implementations for a missing key.
var ErrObjectNotFound = errors.New("object not found")

type Getter interface {
	Stat(ctx context.Context, key string) (entity.ObjectInfo, error)
	// Get streams the object, or only byteRange of it when non-nil.
	Get(ctx context.Context, key string, byteRange *entity.ByteRange) (io.ReadCloser, error)
}
