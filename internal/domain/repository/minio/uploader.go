package minio

import "context"

type Uploader interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}
