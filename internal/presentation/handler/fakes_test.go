package handler

import (
	"context"
	"io"
	"strings"

	"guestlens/internal/application/usecase"
	"guestlens/internal/application/usecase/abstraction"
	"guestlens/internal/domain/dto"
	"guestlens/internal/domain/entity"
	storage "guestlens/internal/domain/repository/minio"
)

type fakeProcessor struct {
	gotData        []byte
	gotName        string
	gotContentType string
	result         dto.MediaFile
	err            error
}

func (f *fakeProcessor) Process(_ context.Context, data []byte, fileName, contentType string) (dto.MediaFile, error) {
	f.gotData = data
	f.gotName = fileName
	f.gotContentType = contentType

	return f.result, f.err
}

type fakeIssuer struct {
	result dto.UploadURL
	err    error
}

func (f *fakeIssuer) Issue(_ context.Context, fileName, fileType string) (dto.UploadURL, error) {
	if fileName == "" || fileType == "" {
		return dto.UploadURL{}, usecase.ErrMissingUploadFields
	}

	return f.result, f.err
}

type fakeLister struct {
	gotPage  int
	gotLimit int
	err      error
}

func (f *fakeLister) ListPage(_ context.Context, page, limit int) (dto.GalleryPage, error) {
	f.gotPage = page
	f.gotLimit = limit
	if f.err != nil {
		return dto.GalleryPage{}, f.err
	}

	return dto.GalleryPage{
		Files:      []dto.MediaFile{{Key: "originals/1-a.jpg", Type: "image"}},
		Pagination: dto.Pagination{CurrentPage: page, ItemsPerPage: limit, TotalItems: 1, TotalPages: 1},
	}, nil
}

// fakeGetter serves objects keyed by storage key and records what was asked.
type fakeGetter struct {
	objects map[string]string
	types   map[string]string
	err     error
	gotKey  string
}

func (f *fakeGetter) Stat(_ context.Context, key string) (*abstraction.MediaStream, error) {
	f.gotKey = key
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}

	return &abstraction.MediaStream{
		ContentType:   usecase.ServedContentType(key, f.types[key]),
		Size:          int64(len(data)),
		ContentLength: int64(len(data)),
		ETag:          "abc",
	}, nil
}

func (f *fakeGetter) Open(ctx context.Context, key, rangeHeader string) (*abstraction.MediaStream, error) {
	stream, err := f.Stat(ctx, key)
	if err != nil {
		return nil, err
	}

	r, err := usecase.ParseRange(rangeHeader, stream.Size)
	if err != nil {
		return nil, err
	}

	data := f.objects[key]
	if r != nil {
		data = data[r.Start : r.End+1]
		stream.Range = &entity.ByteRange{Start: r.Start, End: r.End}
		stream.ContentLength = r.Length()
	}
	stream.Body = io.NopCloser(strings.NewReader(data))

	return stream, nil
}

type countingObserver struct {
	counts map[string]int
}

func (o *countingObserver) ObserveUpload(kind, result string) {
	if o.counts == nil {
		o.counts = map[string]int{}
	}
	o.counts[kind+"/"+result]++
}
