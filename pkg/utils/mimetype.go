package utils

import (
	"path"
	"strings"
)

// extensionToMimeType maps file extensions seen in wedding uploads to the MIME
// type served for them when storage has no usable content type.
var extensionToMimeType = map[string]string{
	".avi":  "video/x-msvideo",
	".bmp":  "image/bmp",
	".gif":  "image/gif",
	".heic": "image/heic",
	".heif": "image/heif",
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".m4v":  "video/mp4",
	".mkv":  "video/x-matroska",
	".mov":  "video/quicktime",
	".mp4":  "video/mp4",
	".png":  "image/png",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".webm": "video/webm",
	".webp": "image/webp",
}

// videoExtensions decides the media kind of a stored object by its name.
var videoExtensions = map[string]struct{}{
	"mp4":  {},
	"mov":  {},
	"avi":  {},
	"webm": {},
	"mkv":  {},
}

// GetMimeTypeFromFileName returns the MIME type for the extension of name.
// If the extension is unknown, it defaults to "application/octet-stream".
func GetMimeTypeFromFileName(name string) string {
	if mt, ok := extensionToMimeType[strings.ToLower(path.Ext(name))]; ok {
		return mt
	}

	return "application/octet-stream"
}

// IsVideoFileName reports whether the extension of name (case-insensitive)
// belongs to a video container.
func IsVideoFileName(name string) bool {
	i := strings.LastIndex(name, ".")
	if i == -1 {
		return false
	}
	_, ok := videoExtensions[strings.ToLower(name[i+1:])]

	return ok
}

// IsBinaryMimeType reports whether mimeType carries no information about the
// payload, e.g. a browser that did not label the file.
func IsBinaryMimeType(mimeType string) bool {
	cleaned := strings.TrimSpace(strings.Split(mimeType, ";")[0])

	return cleaned == "" || cleaned == "application/octet-stream" || cleaned == "binary/octet-stream"
}
