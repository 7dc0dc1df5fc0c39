package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"guestlens/internal/application/usecase"
	"guestlens/internal/application/usecase/abstraction"
	"guestlens/internal/domain/dto"
	"guestlens/internal/domain/model"
	"guestlens/internal/presentation"
	"guestlens/pkg/logger"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

// UploadObserver receives the outcome of every processed upload.
type UploadObserver interface {
	ObserveUpload(kind, result string)
}

type UploadHandler struct {
	processor abstraction.Processor
	observer  UploadObserver
}

func NewUploadHandler(processor abstraction.Processor, observer UploadObserver) *UploadHandler {
	return &UploadHandler{
		processor: processor,
		observer:  observer,
	}
}

// Handle handles POST /api/process-upload requests.
func (h *UploadHandler) Handle(c echo.Context) error {
	header, err := c.FormFile(presentation.FileField)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No file provided"})
	}

	kind := model.KindFromFileName(header.Filename)

	file, err := header.Open()
	if err != nil {
		return h.fail(c, kind, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return h.fail(c, kind, err)
	}

	result, err := h.processor.Process(c.Request().Context(), data, header.Filename, header.Header.Get(echo.HeaderContentType))
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyFile) || errors.Is(err, usecase.ErrMissingFileName) {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No file provided", Details: err.Error()})
		}

		return h.fail(c, kind, err)
	}

	h.observe(result.Type, resultSuccess)

	return c.JSON(http.StatusOK, result)
}

func (h *UploadHandler) fail(c echo.Context, kind model.MediaKind, err error) error {
	logger.Error("upload failed", "err", err)
	h.observe(string(kind), resultFailure)

	return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "Failed to process file",
		Details: err.Error(),
	})
}

func (h *UploadHandler) observe(kind, result string) {
	if h.observer != nil {
		h.observer.ObserveUpload(kind, result)
	}
}
