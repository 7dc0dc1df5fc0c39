package abstraction

import (
	"context"
	"io"

	"guestlens/internal/domain/entity"
)

// MediaStream describes the bytes served for one proxied object. Body is nil
// for metadata-only lookups.
type MediaStream struct {
	Body          io.ReadCloser
	ContentType   string
	Size          int64
	ContentLength int64
	Range         *entity.ByteRange
	ETag          string
}

// Getter defines the interface for serving stored media through the proxy.
type Getter interface {
	Stat(ctx context.Context, key string) (*MediaStream, error)
	Open(ctx context.Context, key, rangeHeader string) (*MediaStream, error)
}
