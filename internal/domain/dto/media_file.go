package dto

// MediaFile is the wire form of one gallery entry and of a processed upload.
type MediaFile struct {
	Key          string `json:"key"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
	OptimizedURL string `json:"optimized_url"`
	OriginalURL  string `json:"original_url"`
	Type         string `json:"type"`
	UploadedAt   string `json:"uploadedAt"`
	FileName     string `json:"fileName"`
	Size         int64  `json:"size"`
}

type Pagination struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalItems      int  `json:"totalItems"`
	ItemsPerPage    int  `json:"itemsPerPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

type GalleryPage struct {
	Files      []MediaFile `json:"files"`
	Pagination Pagination  `json:"pagination"`
}

// UploadURL is returned by the deprecated direct upload mode. Fields is only
// set for presigned POST policies.
type UploadURL struct {
	UploadURL string            `json:"uploadUrl"`
	Fields    map[string]string `json:"fields,omitempty"`
	Key       string            `json:"key"`
}

type UploadURLRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
