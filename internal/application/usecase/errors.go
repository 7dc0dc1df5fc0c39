package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyFile           = errors.New("empty file")
	ErrMissingFileName     = errors.New("missing file name")
	ErrInvalidPagination   = errors.New("page and limit must be positive")
	ErrMissingUploadFields = errors.New("fileName and fileType are required")
	ErrUnknownUploadMode   = errors.New("unknown upload mode")
)

// RangeError reports a syntactically valid range that lies outside the object.
type RangeError struct {
	Size int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range not satisfiable for object of %d bytes", e.Size)
}
