package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"guestlens/internal/application/usecase"
	"guestlens/internal/application/usecase/abstraction"
	"guestlens/internal/domain/dto"
	storage "guestlens/internal/domain/repository/minio"
	"guestlens/internal/presentation"
	"guestlens/pkg/logger"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{
		getter: getter,
	}
}

// HandleGet handles GET /api/media/<key> requests. The key may be sent as one
// encoded segment or with literal slashes.
func (h *GetHandler) HandleGet(c echo.Context) error {
	setMediaCORS(c)

	key, err := mediaKey(c)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	stream, err := h.getter.Open(c.Request().Context(), key, c.Request().Header.Get(presentation.RangeHeader))
	if err != nil {
		var rangeErr *usecase.RangeError
		switch {
		case errors.Is(err, storage.ErrObjectNotFound):
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "File not found"})

		case errors.As(err, &rangeErr):
			c.Response().Header().Set(presentation.ContentRangeTag, fmt.Sprintf("bytes */%d", rangeErr.Size))

			return c.NoContent(http.StatusRequestedRangeNotSatisfiable)

		default:
			logger.Error("failed to fetch media", "key", key, "err", err)

			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "Failed to fetch media",
				Details: err.Error(),
			})
		}
	}
	defer stream.Body.Close()

	setMediaHeaders(c, stream)
	c.Response().Header().Set(presentation.CacheControlTag, presentation.MediaCacheControl)

	status := http.StatusOK
	if stream.Range != nil {
		status = http.StatusPartialContent
		c.Response().Header().Set(presentation.ContentRangeTag,
			fmt.Sprintf("bytes %d-%d/%d", stream.Range.Start, stream.Range.End, stream.Size))
	}

	return c.Stream(status, stream.ContentType, stream.Body)
}

// mediaKey decodes the key once from the escaped request path so that
// percent signs stored inside keys survive.
func mediaKey(c echo.Context) (string, error) {
	raw, ok := strings.CutPrefix(c.Request().URL.EscapedPath(), usecase.MediaPath)
	if !ok || raw == "" {
		return "", errors.New("missing media key")
	}

	key, err := url.PathUnescape(raw)
	if err != nil {
		return "", errors.New("invalid media key")
	}

	return key, nil
}

func setMediaCORS(c echo.Context) {
	header := c.Response().Header()
	header.Set(echo.HeaderAccessControlAllowOrigin, "*")
	header.Set(echo.HeaderAccessControlAllowMethods, presentation.MediaAllowMethods)
	header.Set(echo.HeaderAccessControlAllowHeaders, presentation.MediaAllowHeaders)
}

func setMediaHeaders(c echo.Context, stream *abstraction.MediaStream) {
	header := c.Response().Header()
	header.Set(echo.HeaderContentType, stream.ContentType)
	header.Set(echo.HeaderContentLength, strconv.FormatInt(stream.ContentLength, 10))
	header.Set(presentation.AcceptRangesTag, "bytes")
	if stream.ETag != "" {
		header.Set("ETag", `"`+strings.Trim(stream.ETag, `"`)+`"`)
	}
}
