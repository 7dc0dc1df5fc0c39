package abstraction

import (
	"context"

	"guestlens/internal/domain/dto"
)

type Lister interface {
	ListPage(ctx context.Context, page, limit int) (dto.GalleryPage, error)
}
