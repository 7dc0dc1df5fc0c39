package minio

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"

	"guestlens/pkg/logger"
)

type Uploader struct {
	minioClient *minio.Client
	cfg         *Config
}

func NewUploader(minioClient *minio.Client, cfg *Config) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (u *Uploader) Put(ctx context.Context, key string, body []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, timeout(u.cfg))
	defer cancel()

	_, err := u.minioClient.PutObject(ctx, u.cfg.Bucket, key, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		logger.Error("failed to put object", "key", key, "err", err)

		return fmt.Errorf("put %s: %w", key, err)
	}

	return nil
}
