package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDownloadArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected downloadArgs
		wantErr  bool
	}{
		{name: "config only", args: []string{"guestlens", "download", "config.yml"},
			expected: downloadArgs{configPath: "config.yml"}},
		{name: "out dir", args: []string{"guestlens", "download", "config.yml", "backup"},
			expected: downloadArgs{configPath: "config.yml", outDir: "backup"}},
		{name: "yes first", args: []string{"guestlens", "download", "-y", "config.yml", "backup"},
			expected: downloadArgs{configPath: "config.yml", outDir: "backup", yes: true}},
		{name: "long yes", args: []string{"guestlens", "download", "config.yml", "--yes"},
			expected: downloadArgs{configPath: "config.yml", yes: true}},
		{name: "missing config", args: []string{"guestlens", "download"}, wantErr: true},
		{name: "too many", args: []string{"guestlens", "download", "a", "b", "c"}, wantErr: true},
		{name: "unknown flag", args: []string{"guestlens", "download", "config.yml", "-f"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDownloadArgs(tt.args)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: "y\n", expected: true},
		{input: "YES\n", expected: true},
		{input: " yes ", expected: true},
		{input: "n\n", expected: false},
		{input: "\n", expected: false},
		{input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var out bytes.Buffer
			assert.Equal(t, tt.expected, confirm(strings.NewReader(tt.input), &out, 1500))
			assert.Contains(t, out.String(), "1500 files")
		})
	}
}
