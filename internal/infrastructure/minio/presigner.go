package minio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

type Presigner struct {
	minioClient *minio.Client
	cfg         *Config
}

func NewPresigner(minioClient *minio.Client, cfg *Config) *Presigner {
	return &Presigner{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (p *Presigner) PresignPut(ctx context.Context, key string, ttl time.Duration) (string, error) {
	u, err := p.minioClient.PresignedPutObject(ctx, p.cfg.Bucket, key, ttl)
	if err != nil {
		return "", fmt.Errorf("presign put %s: %w", key, err)
	}

	return u.String(), nil
}

// PresignPost builds a browser form upload limited to maxSize bytes whose
// Content-Type must share the major type of contentType.
func (p *Presigner) PresignPost(ctx context.Context, key, contentType string, maxSize int64,
	ttl time.Duration,
) (string, map[string]string, error) {
	policy := minio.NewPostPolicy()
	if err := policy.SetBucket(p.cfg.Bucket); err != nil {
		return "", nil, err
	}
	if err := policy.SetKey(key); err != nil {
		return "", nil, err
	}
	if err := policy.SetExpires(time.Now().UTC().Add(ttl)); err != nil {
		return "", nil, err
	}
	if err := policy.SetContentLengthRange(0, maxSize); err != nil {
		return "", nil, err
	}
	if err := policy.SetContentTypeStartsWith(strings.SplitN(contentType, "/", 2)[0] + "/"); err != nil {
		return "", nil, err
	}

	u, fields, err := p.minioClient.PresignedPostPolicy(ctx, policy)
	if err != nil {
		return "", nil, fmt.Errorf("presign post %s: %w", key, err)
	}
	fields["Content-Type"] = contentType

	return u.String(), fields, nil
}
