package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"

	"guestlens/internal/domain/dto"
	"guestlens/internal/domain/entity"
	"guestlens/internal/domain/model"
	"guestlens/internal/domain/repository/broker"
	"guestlens/internal/domain/repository/minio"
	"guestlens/internal/infrastructure/imageproc"
	"guestlens/pkg/logger"
	"guestlens/pkg/utils"
)

// Processor implements the Processor abstraction: it stores the original
// upload and, for images, a thumbnail and an optimized copy next to it.
type Processor struct {
	uploader  minio.Uploader
	publisher broker.Publisher
	urls      MediaURLs
	now       func() time.Time
}

// NewProcessor creates a new Processor usecase.
func NewProcessor(uploader minio.Uploader, publisher broker.Publisher, urls MediaURLs) *Processor {
	return &Processor{
		uploader:  uploader,
		publisher: publisher,
		urls:      urls,
		now:       time.Now,
	}
}

// Process stores data under originals/. Images are rendered before anything
// is written, then all objects are written concurrently; one failed write
// fails the call. Objects already written by then are left behind.
func (p *Processor) Process(ctx context.Context, data []byte, fileName, contentType string) (dto.MediaFile, error) {
	if len(data) == 0 {
		return dto.MediaFile{}, ErrEmptyFile
	}
	if fileName == "" {
		return dto.MediaFile{}, ErrMissingFileName
	}

	contentType = resolveContentType(data, contentType, fileName)
	kind := model.KindFromContentType(contentType)
	uploadedAt := p.now().UTC()
	base := model.BaseName(uploadedAt, fileName)
	set := model.VariantSet{Original: model.PrefixOriginals + base}

	var variants imageproc.Variants
	if kind == model.KindImage {
		var err error
		if variants, err = imageproc.Render(data); err != nil {
			return dto.MediaFile{}, err
		}
		thumbnail := model.PrefixThumbnails + base
		optimized := model.PrefixOptimized + base
		set.Thumbnail = &thumbnail
		set.Optimized = &optimized
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return p.uploader.Put(gCtx, set.Original, data, contentType)
	})
	if kind == model.KindImage {
		g.Go(func() error {
			return p.uploader.Put(gCtx, *set.Thumbnail, variants.Thumbnail, imageproc.ContentType)
		})
		g.Go(func() error {
			return p.uploader.Put(gCtx, *set.Optimized, variants.Optimized, imageproc.ContentType)
		})
	}
	if err := g.Wait(); err != nil {
		return dto.MediaFile{}, err
	}

	logger.Info("stored upload", "key", set.Original, "type", kind, "size", len(data))

	if err := p.publisher.Publish(ctx, entity.UploadEvent{
		Key:        set.Original,
		Type:       string(kind),
		FileName:   fileName,
		Size:       int64(len(data)),
		UploadedAt: uploadedAt,
	}); err != nil {
		logger.Error("failed to publish upload event", "key", set.Original, "err", err)
	}

	return p.urls.mediaFile(model.MediaObject{
		Key:          set.Original,
		FileName:     fileName,
		Kind:         kind,
		Size:         int64(len(data)),
		LastModified: uploadedAt,
		Variants:     set,
	}), nil
}

// resolveContentType trusts the declared type unless it is missing or
// generic. Then a sniffed image or video type wins over the extension, and
// any other sniffed type is the last resort.
func resolveContentType(data []byte, declared, fileName string) string {
	if !utils.IsBinaryMimeType(declared) {
		return declared
	}

	detected := mimetype.Detect(data).String()
	if strings.HasPrefix(detected, "image/") || strings.HasPrefix(detected, "video/") {
		return detected
	}

	if byName := utils.GetMimeTypeFromFileName(fileName); !utils.IsBinaryMimeType(byName) {
		return byName
	}

	return detected
}

// mediaFile renders obj with fully resolved variant URLs. The default URL is
// the optimized copy, which for videos is the original itself.
func (m MediaURLs) mediaFile(obj model.MediaObject) dto.MediaFile {
	optimized := m.For(obj.Variants.OptimizedKey())

	return dto.MediaFile{
		Key:          obj.Key,
		URL:          optimized,
		ThumbnailURL: m.For(obj.Variants.ThumbnailKey()),
		OptimizedURL: optimized,
		OriginalURL:  m.For(obj.Variants.Original),
		Type:         string(obj.Kind),
		UploadedAt:   obj.LastModified.UTC().Format(isoMillis),
		FileName:     obj.FileName,
		Size:         obj.Size,
	}
}
