package usecase

import (
	"context"
	"time"

	"guestlens/internal/domain/dto"
	"guestlens/internal/domain/model"
	"guestlens/internal/domain/repository/minio"
	"guestlens/pkg/logger"
)

const (
	UploadModePut  = "put"
	UploadModePost = "post"
)

type PresignerConfig struct {
	Mode    string
	TTL     time.Duration
	MaxSize int64
}

// Presigner implements the deprecated UploadURLIssuer abstraction. Files sent
// this way land under uploads/ and never get derived variants.
type Presigner struct {
	presigner minio.Presigner
	cfg       PresignerConfig
	now       func() time.Time
}

// NewPresigner creates a new Presigner usecase.
func NewPresigner(presigner minio.Presigner, cfg PresignerConfig) *Presigner {
	return &Presigner{
		presigner: presigner,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (p *Presigner) Issue(ctx context.Context, fileName, fileType string) (dto.UploadURL, error) {
	if fileName == "" || fileType == "" {
		return dto.UploadURL{}, ErrMissingUploadFields
	}

	key := model.LegacyKey(p.now(), fileName)
	logger.Warn("issuing deprecated direct upload url", "key", key, "mode", p.cfg.Mode)

	switch p.cfg.Mode {
	case UploadModePut:
		u, err := p.presigner.PresignPut(ctx, key, p.cfg.TTL)
		if err != nil {
			return dto.UploadURL{}, err
		}

		return dto.UploadURL{UploadURL: u, Key: key}, nil

	case UploadModePost:
		u, fields, err := p.presigner.PresignPost(ctx, key, fileType, p.cfg.MaxSize, p.cfg.TTL)
		if err != nil {
			return dto.UploadURL{}, err
		}

		return dto.UploadURL{UploadURL: u, Fields: fields, Key: key}, nil

	default:
		return dto.UploadURL{}, ErrUnknownUploadMode
	}
}
