package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"guestlens/internal/application/usecase/abstraction"
	storage "guestlens/internal/domain/repository/minio"
	"guestlens/internal/presentation"
	"guestlens/pkg/logger"
)

type HeadHandler struct {
	getter abstraction.Getter
}

func NewHeadHandler(getter abstraction.Getter) *HeadHandler {
	return &HeadHandler{
		getter: getter,
	}
}

// HandleHead handles HEAD /api/media/<key> requests.
func (h *HeadHandler) HandleHead(c echo.Context) error {
	setMediaCORS(c)

	key, err := mediaKey(c)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusBadRequest)
	}

	stream, err := h.getter.Stat(c.Request().Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return c.NoContent(http.StatusNotFound)
		}

		logger.Error("failed to stat media", "key", key, "err", err)
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusInternalServerError)
	}

	setMediaHeaders(c, stream)

	return c.NoContent(http.StatusOK)
}

// HandleOptions answers CORS preflight requests for media.
func (h *HeadHandler) HandleOptions(c echo.Context) error {
	setMediaCORS(c)
	c.Response().Header().Set(echo.HeaderAccessControlMaxAge, presentation.MediaCORSMaxAge)

	return c.NoContent(http.StatusOK)
}
