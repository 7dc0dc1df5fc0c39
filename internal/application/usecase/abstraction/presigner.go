package abstraction

import (
	"context"

	"guestlens/internal/domain/dto"
)

// UploadURLIssuer hands out direct-to-storage upload URLs.
//
// Deprecated: uploads should go through Processor so variants get generated.
type UploadURLIssuer interface {
	Issue(ctx context.Context, fileName, fileType string) (dto.UploadURL, error)
}
