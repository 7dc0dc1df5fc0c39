package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"guestlens/internal/application/usecase"
	"guestlens/internal/application/usecase/abstraction"
	"guestlens/internal/domain/dto"
	"guestlens/internal/presentation"
	"guestlens/pkg/logger"
)

// UploadURLHandler serves the direct-to-storage upload mode.
//
// Deprecated: clients should post files to /api/process-upload.
type UploadURLHandler struct {
	issuer abstraction.UploadURLIssuer
}

func NewUploadURLHandler(issuer abstraction.UploadURLIssuer) *UploadURLHandler {
	return &UploadURLHandler{
		issuer: issuer,
	}
}

// Handle handles POST /api/upload requests.
func (h *UploadURLHandler) Handle(c echo.Context) error {
	c.Response().Header().Set(presentation.DeprecationTag, "true")

	var req dto.UploadURLRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: usecase.ErrMissingUploadFields.Error()})
	}

	result, err := h.issuer.Issue(c.Request().Context(), req.FileName, req.FileType)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingUploadFields) {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		}

		logger.Error("failed to create upload url", "file_name", req.FileName, "err", err)

		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Failed to create upload URL",
			Details: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, result)
}
