package usecase

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"guestlens/internal/domain/dto"
	"guestlens/internal/domain/entity"
	"guestlens/internal/domain/model"
	"guestlens/internal/domain/repository/minio"
	"guestlens/pkg/logger"
)

// galleryPrefixes are listed in this order; it decides ties on equal timestamps.
var galleryPrefixes = []string{model.PrefixOriginals, model.PrefixLegacy}

// Lister implements the Lister abstraction over the bucket layout.
type Lister struct {
	lister minio.Lister
	urls   MediaURLs
}

// NewLister creates a new Lister usecase.
func NewLister(lister minio.Lister, urls MediaURLs) *Lister {
	return &Lister{
		lister: lister,
		urls:   urls,
	}
}

// ListPage returns one page of every upload, newest first. Listings reflect
// what storage reports, which may lag recent writes.
func (l *Lister) ListPage(ctx context.Context, page, limit int) (dto.GalleryPage, error) {
	if page < 1 || limit < 1 {
		return dto.GalleryPage{}, ErrInvalidPagination
	}

	objects, err := l.listAll(ctx)
	if err != nil {
		return dto.GalleryPage{}, err
	}

	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].LastModified.After(objects[j].LastModified)
	})

	files := make([]dto.MediaFile, 0, len(objects))
	for _, obj := range objects {
		media, err := toMediaObject(obj)
		if err != nil {
			logger.Warn("skipping object in gallery", "key", obj.Key, "err", err)

			continue
		}
		files = append(files, l.urls.mediaFile(media))
	}

	start, end, pagination := Paginate(len(files), page, limit)

	return dto.GalleryPage{
		Files:      files[start:end],
		Pagination: pagination,
	}, nil
}

func (l *Lister) listAll(ctx context.Context) ([]entity.ObjectInfo, error) {
	results := make([][]entity.ObjectInfo, len(galleryPrefixes))

	g, gCtx := errgroup.WithContext(ctx)
	for i, prefix := range galleryPrefixes {
		g.Go(func() error {
			objects, err := l.lister.List(gCtx, prefix)
			results[i] = objects

			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []entity.ObjectInfo
	for _, r := range results {
		all = append(all, r...)
	}

	return all, nil
}

func toMediaObject(obj entity.ObjectInfo) (model.MediaObject, error) {
	name, err := model.FileNameFromKey(obj.Key)
	if err != nil {
		return model.MediaObject{}, err
	}
	kind := model.KindFromFileName(name)

	return model.MediaObject{
		Key:          obj.Key,
		FileName:     name,
		Kind:         kind,
		Size:         obj.Size,
		LastModified: obj.LastModified,
		Variants:     model.VariantsForKey(obj.Key, kind),
	}, nil
}

// Paginate returns the slice bounds of page within total items and the
// matching metadata. Pages past the end yield an empty slice.
func Paginate(total, page, limit int) (int, int, dto.Pagination) {
	totalPages := (total + limit - 1) / limit

	start := total
	if page-1 <= total/limit {
		start = min((page-1)*limit, total)
	}
	end := total
	if total-start > limit {
		end = start + limit
	}

	return start, end, dto.Pagination{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalItems:      total,
		ItemsPerPage:    limit,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
