package minio

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"

	"guestlens/internal/domain/entity"
	"guestlens/pkg/logger"
)

type Lister struct {
	minioClient *minio.Client
	cfg         *Config
}

func NewLister(minioClient *minio.Client, cfg *Config) *Lister {
	return &Lister{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// List returns every object under prefix. Continuation tokens are followed by
// the client, so the result is complete or an error.
func (l *Lister) List(ctx context.Context, prefix string) ([]entity.ObjectInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout(l.cfg))
	defer cancel()

	var objects []entity.ObjectInfo
	for obj := range l.minioClient.ListObjects(ctx, l.cfg.Bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			logger.Error("failed to list objects", "prefix", prefix, "err", obj.Err)

			return nil, fmt.Errorf("list %s: %w", prefix, obj.Err)
		}

		objects = append(objects, entity.ObjectInfo{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
			ContentType:  obj.ContentType,
			ETag:         obj.ETag,
		})
	}

	return objects, nil
}
