package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestlens/internal/domain/dto"
)

func TestHandleList(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		listErr        error
		expectedStatus int
		expectedPage   int
		expectedLimit  int
	}{
		{name: "defaults", query: "", expectedStatus: http.StatusOK, expectedPage: 1, expectedLimit: 20},
		{name: "explicit", query: "?page=3&limit=10", expectedStatus: http.StatusOK, expectedPage: 3, expectedLimit: 10},
		{name: "limit capped", query: "?limit=500", expectedStatus: http.StatusOK, expectedPage: 1, expectedLimit: 100},
		{name: "zero page", query: "?page=0", expectedStatus: http.StatusBadRequest},
		{name: "negative limit", query: "?limit=-4", expectedStatus: http.StatusBadRequest},
		{name: "non numeric", query: "?page=two", expectedStatus: http.StatusBadRequest},
		{name: "storage failure", query: "", listErr: errors.New("list failed"),
			expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lister := &fakeLister{err: tt.listErr}
			h := NewListHandler(lister, 20, 100)

			e := echo.New()
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/gallery"+tt.query, nil)

			require.NoError(t, h.HandleList(e.NewContext(req, rec)))
			assert.Equal(t, tt.expectedStatus, rec.Code)

			switch tt.expectedStatus {
			case http.StatusOK:
				assert.Equal(t, tt.expectedPage, lister.gotPage)
				assert.Equal(t, tt.expectedLimit, lister.gotLimit)

				var page dto.GalleryPage
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
				assert.Len(t, page.Files, 1)
				assert.Equal(t, tt.expectedLimit, page.Pagination.ItemsPerPage)

			case http.StatusBadRequest:
				assert.NotEmpty(t, rec.Header().Get("X-Reason"))
				assert.Zero(t, lister.gotPage)

			default:
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "Failed to fetch gallery", resp.Error)
			}
		})
	}
}
