package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"guestlens/internal/domain/entity"
)

type Getter struct {
	minioClient *minio.Client
	cfg         *Config
}

func NewGetter(minioClient *minio.Client, cfg *Config) *Getter {
	return &Getter{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (g *Getter) Stat(ctx context.Context, key string) (entity.ObjectInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout(g.cfg))
	defer cancel()

	info, err := g.minioClient.StatObject(ctx, g.cfg.Bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return entity.ObjectInfo{}, mapError(err)
	}

	return entity.ObjectInfo{
		Key:          info.Key,
		Size:         info.Size,
		LastModified: info.LastModified,
		ContentType:  info.ContentType,
		ETag:         info.ETag,
	}, nil
}

// Get is bound to ctx only: a video stream may outlive the operation timeout.
func (g *Getter) Get(ctx context.Context, key string, byteRange *entity.ByteRange) (io.ReadCloser, error) {
	opts := minio.GetObjectOptions{}
	if byteRange != nil {
		if err := opts.SetRange(byteRange.Start, byteRange.End); err != nil {
			return nil, fmt.Errorf("range of %s: %w", key, err)
		}
	}

	obj, err := g.minioClient.GetObject(ctx, g.cfg.Bucket, key, opts)
	if err != nil {
		return nil, mapError(err)
	}

	// The request is only sent on first use; Stat surfaces a missing key
	// before any byte is written to the client.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()

		return nil, mapError(err)
	}

	return obj, nil
}
