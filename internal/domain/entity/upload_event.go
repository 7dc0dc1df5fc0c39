package entity

import "time"

// UploadEvent announces a processed upload to downstream consumers.
type UploadEvent struct {
	Key        string
	Type       string
	FileName   string
	Size       int64
	UploadedAt time.Time
}
