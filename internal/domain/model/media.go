package model

import "time"

type MediaKind string

const (
	KindImage MediaKind = "image"
	KindVideo MediaKind = "video"
)

// MediaObject is one stored upload as seen by the gallery. Objects are
// immutable once written.
type MediaObject struct {
	Key          string
	FileName     string
	Kind         MediaKind
	Size         int64
	LastModified time.Time
	Variants     VariantSet
}

// VariantSet holds the storage keys of the representations of one upload.
// Optimized and Thumbnail are nil when no derived copy exists (videos, legacy
// uploads); readers resolve them through OptimizedKey and ThumbnailKey.
type VariantSet struct {
	Original  string
	Optimized *string
	Thumbnail *string
}

// OptimizedKey resolves optimized -> original.
func (v VariantSet) OptimizedKey() string {
	if v.Optimized != nil {
		return *v.Optimized
	}

	return v.Original
}

// ThumbnailKey resolves thumbnail -> optimized -> original.
func (v VariantSet) ThumbnailKey() string {
	if v.Thumbnail != nil {
		return *v.Thumbnail
	}

	return v.OptimizedKey()
}
