package usecase

import (
	"strings"

	"guestlens/pkg/utils"
)

// MediaPath is the route prefix of the media proxy.
const MediaPath = "/api/media/"

// isoMillis matches the timestamps browsers produce with toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// MediaURLs builds proxy URLs for storage keys. The key is encoded as a single
// path segment so that it survives routing unchanged.
type MediaURLs struct {
	BaseURL string
}

func NewMediaURLs(baseURL string) MediaURLs {
	return MediaURLs{BaseURL: strings.TrimSuffix(baseURL, "/")}
}

func (m MediaURLs) For(key string) string {
	return m.BaseURL + MediaPath + utils.EncodeURIComponent(key)
}
