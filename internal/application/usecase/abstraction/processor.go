package abstraction

import (
	"context"

	"guestlens/internal/domain/dto"
)

// Processor stores an upload together with its derived variants.
type Processor interface {
	Process(ctx context.Context, data []byte, fileName, contentType string) (dto.MediaFile, error)
}
