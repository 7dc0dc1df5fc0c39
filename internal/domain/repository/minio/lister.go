package minio

import (
	"context"

	"guestlens/internal/domain/entity"
)

type Lister interface {
	List(ctx context.Context, prefix string) ([]entity.ObjectInfo, error)
}
