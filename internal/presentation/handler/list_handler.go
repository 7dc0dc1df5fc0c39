package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"guestlens/internal/application/usecase/abstraction"
	"guestlens/internal/domain/dto"
	"guestlens/internal/presentation"
	"guestlens/pkg/logger"
)

type ListHandler struct {
	lister       abstraction.Lister
	defaultLimit int
	maxLimit     int
}

func NewListHandler(lister abstraction.Lister, defaultLimit, maxLimit int) *ListHandler {
	return &ListHandler{
		lister:       lister,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// HandleList handles GET /api/gallery?page=&limit= requests.
func (h *ListHandler) HandleList(c echo.Context) error {
	page, err := parsePositiveQueryParam(c, presentation.PageParam, 1)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	limit, err := parsePositiveQueryParam(c, presentation.LimitParam, h.defaultLimit)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}
	limit = min(limit, h.maxLimit)

	result, err := h.lister.ListPage(c.Request().Context(), page, limit)
	if err != nil {
		logger.Error("failed to fetch gallery", "page", page, "limit", limit, "err", err)

		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Failed to fetch gallery",
			Details: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, result)
}

// parsePositiveQueryParam reads an integer query parameter >= 1, returning
// fallback when it is absent.
func parsePositiveQueryParam(c echo.Context, name string, fallback int) (int, error) {
	s := c.QueryParam(name)
	if s == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid '%s' parameter", name)
	}

	return n, nil
}
