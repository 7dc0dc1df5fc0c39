package broker

import (
	"context"

	"guestlens/internal/domain/entity"
)

type Publisher interface {
	Publish(ctx context.Context, event entity.UploadEvent) error
}
