package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresignerIssue(t *testing.T) {
	fixed := time.UnixMilli(1718366400123)

	tests := []struct {
		name           string
		mode           string
		fileName       string
		fileType       string
		expectedErr    error
		expectedFields map[string]string
	}{
		{name: "put", mode: UploadModePut, fileName: "IMG 1.jpg", fileType: "image/jpeg"},
		{name: "post", mode: UploadModePost, fileName: "IMG 1.jpg", fileType: "image/jpeg",
			expectedFields: map[string]string{"key": "uploads/1718366400123-IMG 1.jpg", "Content-Type": "image/jpeg"}},
		{name: "missing name", mode: UploadModePut, fileType: "image/jpeg", expectedErr: ErrMissingUploadFields},
		{name: "missing type", mode: UploadModePost, fileName: "a.jpg", expectedErr: ErrMissingUploadFields},
		{name: "unknown mode", mode: "ftp", fileName: "a.jpg", fileType: "image/jpeg",
			expectedErr: ErrUnknownUploadMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPresigner(newMemStorage(), PresignerConfig{Mode: tt.mode, TTL: 10 * time.Minute, MaxSize: 50 << 20})
			p.now = func() time.Time { return fixed }

			result, err := p.Issue(context.Background(), tt.fileName, tt.fileType)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "uploads/1718366400123-IMG 1.jpg", result.Key)
			assert.NotEmpty(t, result.UploadURL)
			assert.Equal(t, tt.expectedFields, result.Fields)
		})
	}
}
