package usecase

import (
	"context"
	"strconv"
	"strings"

	"guestlens/internal/application/usecase/abstraction"
	"guestlens/internal/domain/entity"
	"guestlens/internal/domain/repository/minio"
	"guestlens/pkg/utils"
)

const (
	quickTimeType = "video/quicktime"
	mp4Type       = "video/mp4"
)

// Getter implements the Getter abstraction for the media proxy.
type Getter struct {
	getter minio.Getter
}

// NewGetter creates a new Getter usecase.
func NewGetter(getter minio.Getter) *Getter {
	return &Getter{
		getter: getter,
	}
}

// Stat returns the headers of key without opening its body.
func (g *Getter) Stat(ctx context.Context, key string) (*abstraction.MediaStream, error) {
	info, err := g.getter.Stat(ctx, key)
	if err != nil {
		return nil, err
	}

	return &abstraction.MediaStream{
		ContentType:   ServedContentType(key, info.ContentType),
		Size:          info.Size,
		ContentLength: info.Size,
		ETag:          info.ETag,
	}, nil
}

// Open streams key. A satisfiable single range in rangeHeader limits the body
// to that range; a malformed header is ignored and the whole object is served.
func (g *Getter) Open(ctx context.Context, key, rangeHeader string) (*abstraction.MediaStream, error) {
	stream, err := g.Stat(ctx, key)
	if err != nil {
		return nil, err
	}

	byteRange, err := ParseRange(rangeHeader, stream.Size)
	if err != nil {
		return nil, err
	}

	body, err := g.getter.Get(ctx, key, byteRange)
	if err != nil {
		return nil, err
	}

	stream.Body = body
	stream.Range = byteRange
	if byteRange != nil {
		stream.ContentLength = byteRange.Length()
	}

	return stream, nil
}

// ServedContentType labels QuickTime files as MP4 so that browsers attempt to
// play them, and guesses a type from the key when storage has none.
func ServedContentType(key, stored string) string {
	if stored == quickTimeType || strings.HasSuffix(strings.ToLower(key), ".mov") {
		return mp4Type
	}
	if utils.IsBinaryMimeType(stored) {
		return utils.GetMimeTypeFromFileName(key)
	}

	return stored
}

// ParseRange parses a single "bytes=" range against an object of size bytes.
// It returns nil for an absent, malformed or multi-range header and a
// *RangeError when the range lies outside the object.
func ParseRange(header string, size int64) (*entity.ByteRange, error) {
	ranges, ok := strings.CutPrefix(strings.TrimSpace(header), "bytes=")
	if !ok || strings.Contains(ranges, ",") {
		return nil, nil //nolint
	}

	first, last, ok := strings.Cut(strings.TrimSpace(ranges), "-")
	if !ok {
		return nil, nil //nolint
	}

	if first == "" {
		n, err := strconv.ParseInt(last, 10, 64)
		if err != nil || n < 0 {
			return nil, nil //nolint
		}
		if n == 0 || size == 0 {
			return nil, &RangeError{Size: size}
		}

		return &entity.ByteRange{Start: max(size-n, 0), End: size - 1}, nil
	}

	start, err := strconv.ParseInt(first, 10, 64)
	if err != nil || start < 0 {
		return nil, nil //nolint
	}

	end := size - 1
	if last != "" {
		end, err = strconv.ParseInt(last, 10, 64)
		if err != nil || end < start {
			return nil, nil //nolint
		}
	}

	if start >= size {
		return nil, &RangeError{Size: size}
	}

	return &entity.ByteRange{Start: start, End: min(end, size-1)}, nil
}
