package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"guestlens/pkg/utils"
)

// Storage layout. Every upload of the current scheme is stored under
// PrefixOriginals; images also get siblings with the same base name under
// PrefixThumbnails and PrefixOptimized. PrefixLegacy holds direct uploads made
// before derived variants existed and must stay readable.
const (
	PrefixOriginals  = "originals/"
	PrefixThumbnails = "thumbnails/"
	PrefixOptimized  = "optimized/"
	PrefixLegacy     = "uploads/"
)

var (
	ErrEmptyKey     = errors.New("empty object key")
	ErrEmptyName    = errors.New("empty file name")
	timestampPrefix = regexp.MustCompile(`^\d+-`)
)

// BaseName returns "<unix-millis>-<encoded name>", the name shared by all
// variants of one upload.
func BaseName(uploadedAt time.Time, fileName string) string {
	return strconv.FormatInt(uploadedAt.UnixMilli(), 10) + "-" + utils.EncodeURIComponent(fileName)
}

// LegacyKey builds a key for the direct presigned upload mode. The file name is
// kept verbatim there.
func LegacyKey(uploadedAt time.Time, fileName string) string {
	return PrefixLegacy + strconv.FormatInt(uploadedAt.UnixMilli(), 10) + "-" + fileName
}

// FileNameFromKey recovers the display name of a stored key: the last path
// segment without its "<digits>-" token, percent-decoded.
func FileNameFromKey(key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	segment := key[strings.LastIndex(key, "/")+1:]
	name, err := utils.DecodeURIComponent(timestampPrefix.ReplaceAllString(segment, ""))
	if err != nil {
		return "", fmt.Errorf("decode file name of %q: %w", key, err)
	}
	if name == "" {
		return "", ErrEmptyName
	}

	return name, nil
}

// KindFromFileName classifies a stored object by the extension of its name.
func KindFromFileName(name string) MediaKind {
	if utils.IsVideoFileName(name) {
		return KindVideo
	}

	return KindImage
}

// KindFromContentType classifies an incoming upload by its MIME type.
func KindFromContentType(contentType string) MediaKind {
	if strings.HasPrefix(contentType, "video/") {
		return KindVideo
	}

	return KindImage
}

// VariantsForKey derives the sibling keys of a stored object. Only images
// under PrefixOriginals have derived copies.
func VariantsForKey(key string, kind MediaKind) VariantSet {
	set := VariantSet{Original: key}
	if kind != KindImage || !strings.HasPrefix(key, PrefixOriginals) {
		return set
	}

	base := strings.TrimPrefix(key, PrefixOriginals)
	thumb := PrefixThumbnails + base
	optimized := PrefixOptimized + base
	set.Thumbnail = &thumb
	set.Optimized = &optimized

	return set
}
