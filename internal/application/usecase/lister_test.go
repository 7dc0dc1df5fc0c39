package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestlens/internal/domain/dto"
	"guestlens/internal/domain/model"
)

func TestListPageMergesAndSorts(t *testing.T) {
	store := newMemStorage()
	base := time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)

	store.add("originals/100-ring.jpg", []byte("ring"), "image/jpeg", base.Add(2*time.Minute))
	store.add("thumbnails/100-ring.jpg", []byte("t"), "image/jpeg", base.Add(2*time.Minute))
	store.add("optimized/100-ring.jpg", []byte("o"), "image/jpeg", base.Add(2*time.Minute))
	store.add("originals/200-first%20dance.MOV", []byte("dance"), "video/quicktime", base.Add(3*time.Minute))
	store.add("uploads/50-cake.jpg", []byte("cake"), "image/jpeg", base.Add(time.Minute))
	store.add("uploads/60-tie.jpg", []byte("tie"), "image/jpeg", base.Add(2*time.Minute))

	l := NewLister(store, NewMediaURLs("https://photos.example/"))

	result, err := l.ListPage(context.Background(), 1, 20)
	require.NoError(t, err)

	keys := make([]string, 0, len(result.Files))
	for _, f := range result.Files {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{
		"originals/200-first%20dance.MOV",
		"originals/100-ring.jpg",
		"uploads/60-tie.jpg",
		"uploads/50-cake.jpg",
	}, keys)

	video := result.Files[0]
	assert.Equal(t, "video", video.Type)
	assert.Equal(t, "first dance.MOV", video.FileName)
	assert.Equal(t, video.OriginalURL, video.ThumbnailURL)
	assert.Equal(t, video.OriginalURL, video.URL)

	ring := result.Files[1]
	assert.Equal(t, "image", ring.Type)
	assert.Equal(t, "ring.jpg", ring.FileName)
	assert.Equal(t, "https://photos.example/api/media/thumbnails%2F100-ring.jpg", ring.ThumbnailURL)
	assert.Equal(t, "https://photos.example/api/media/optimized%2F100-ring.jpg", ring.OptimizedURL)
	assert.Equal(t, "https://photos.example/api/media/originals%2F100-ring.jpg", ring.OriginalURL)
	assert.Equal(t, ring.OptimizedURL, ring.URL)
	assert.Equal(t, "2025-06-14T18:02:00.000Z", ring.UploadedAt)
	assert.Equal(t, int64(4), ring.Size)

	legacy := result.Files[2]
	assert.Equal(t, "tie.jpg", legacy.FileName)
	assert.Equal(t, legacy.OriginalURL, legacy.ThumbnailURL)
	assert.Equal(t, legacy.OriginalURL, legacy.OptimizedURL)

	assert.Equal(t, dto.Pagination{
		CurrentPage:  1,
		TotalPages:   1,
		TotalItems:   4,
		ItemsPerPage: 20,
	}, result.Pagination)
}

func TestListPagePagination(t *testing.T) {
	store := newMemStorage()
	first := time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)
	for i := range 25 {
		store.add(fmt.Sprintf("originals/%d-img%02d.jpg", i, i), []byte("x"), "image/jpeg",
			first.Add(time.Duration(i)*time.Second))
	}

	l := NewLister(store, NewMediaURLs(""))

	second, err := l.ListPage(context.Background(), 2, 20)
	require.NoError(t, err)
	require.Len(t, second.Files, 5)
	assert.Equal(t, "img04.jpg", second.Files[0].FileName)
	assert.Equal(t, "img00.jpg", second.Files[4].FileName)
	assert.Equal(t, 2, second.Pagination.TotalPages)
	assert.False(t, second.Pagination.HasNextPage)
	assert.True(t, second.Pagination.HasPreviousPage)

	beyond, err := l.ListPage(context.Background(), 3, 20)
	require.NoError(t, err)
	assert.Empty(t, beyond.Files)
	assert.Equal(t, 25, beyond.Pagination.TotalItems)
}

func TestListPageDropsUndecodableKeys(t *testing.T) {
	store := newMemStorage()
	now := time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)
	store.add("originals/1-good.jpg", []byte("x"), "image/jpeg", now)
	store.add("originals/2-bad%E0%A4%A.jpg", []byte("x"), "image/jpeg", now)
	store.add("originals/3-caf%FF.jpg", []byte("x"), "image/jpeg", now)
	store.add("uploads/4-%C3%28.jpg", []byte("x"), "image/jpeg", now)
	store.add("uploads/", nil, "", now)

	l := NewLister(store, NewMediaURLs(""))

	result, err := l.ListPage(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "good.jpg", result.Files[0].FileName)
	assert.Equal(t, 1, result.Pagination.TotalItems)
}

func TestListPageErrors(t *testing.T) {
	store := newMemStorage()
	l := NewLister(store, NewMediaURLs(""))

	_, err := l.ListPage(context.Background(), 0, 20)
	assert.ErrorIs(t, err, ErrInvalidPagination)

	_, err = l.ListPage(context.Background(), 1, 0)
	assert.ErrorIs(t, err, ErrInvalidPagination)

	listErr := errors.New("listing denied")
	store.failList[model.PrefixLegacy] = listErr

	_, err = l.ListPage(context.Background(), 1, 20)
	assert.ErrorIs(t, err, listErr)
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		page          int
		limit         int
		expectedStart int
		expectedEnd   int
		expectedPages int
		expectedNext  bool
		expectedPrev  bool
	}{
		{name: "empty", total: 0, page: 1, limit: 20, expectedStart: 0, expectedEnd: 0, expectedPages: 0},
		{name: "single page", total: 3, page: 1, limit: 20, expectedStart: 0, expectedEnd: 3, expectedPages: 1},
		{name: "exact fit", total: 40, page: 2, limit: 20, expectedStart: 20, expectedEnd: 40, expectedPages: 2,
			expectedPrev: true},
		{name: "middle page", total: 45, page: 2, limit: 20, expectedStart: 20, expectedEnd: 40, expectedPages: 3,
			expectedNext: true, expectedPrev: true},
		{name: "partial last page", total: 45, page: 3, limit: 20, expectedStart: 40, expectedEnd: 45,
			expectedPages: 3, expectedPrev: true},
		{name: "past the end", total: 45, page: 9, limit: 20, expectedStart: 45, expectedEnd: 45, expectedPages: 3,
			expectedPrev: true},
		{name: "huge page", total: 45, page: math.MaxInt, limit: 20, expectedStart: 45, expectedEnd: 45,
			expectedPages: 3, expectedPrev: true},
		{name: "huge limit", total: 45, page: 1, limit: math.MaxInt32, expectedStart: 0, expectedEnd: 45,
			expectedPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, p := Paginate(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
			assert.Equal(t, tt.expectedPages, p.TotalPages)
			assert.Equal(t, tt.expectedNext, p.HasNextPage)
			assert.Equal(t, tt.expectedPrev, p.HasPreviousPage)
			assert.Equal(t, tt.total, p.TotalItems)
			assert.Equal(t, tt.page, p.CurrentPage)
		})
	}
}
