// Package imageproc derives the display variants of an uploaded photo.
package imageproc

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	// WebP decoder for imaging.Decode.
	_ "golang.org/x/image/webp"
)

const (
	ThumbnailSize    = 400
	ThumbnailQuality = 75
	OptimizedMaxSize = 1920
	OptimizedQuality = 85
	ContentType      = "image/jpeg"
)

// Variants are JPEG encodings of one source image.
type Variants struct {
	Thumbnail []byte
	Optimized []byte
}

// Render decodes data (applying EXIF orientation) and derives a square
// ThumbnailSize crop of the centre and a copy that fits OptimizedMaxSize on
// both axes. The optimized copy is never larger than the source.
func Render(data []byte) (Variants, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return Variants{}, fmt.Errorf("decode image: %w", err)
	}

	thumbnail, err := encode(imaging.Fill(img, ThumbnailSize, ThumbnailSize, imaging.Center, imaging.Lanczos),
		ThumbnailQuality)
	if err != nil {
		return Variants{}, fmt.Errorf("encode thumbnail: %w", err)
	}

	optimized, err := encode(imaging.Fit(img, OptimizedMaxSize, OptimizedMaxSize, imaging.Lanczos), OptimizedQuality)
	if err != nil {
		return Variants{}, fmt.Errorf("encode optimized: %w", err)
	}

	return Variants{
		Thumbnail: thumbnail,
		Optimized: optimized,
	}, nil
}

func encode(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
