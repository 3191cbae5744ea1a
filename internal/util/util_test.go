package util

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "image limit", bytes: 5 << 20, expected: "5.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestSniffContentType(t *testing.T) {
	t.Parallel()

	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 1000)...)

	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{name: "png larger than sniff window", content: png, want: "image/png"},
		{name: "jpeg", content: []byte("\xff\xd8\xff\xe0 tiny"), want: "image/jpeg"},
		{name: "text", content: []byte("hello"), want: "text/plain; charset=utf-8"},
		{name: "empty", content: nil, want: "text/plain; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			contentType, r, err := SniffContentType(bytes.NewReader(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, contentType)

			replayed, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, len(tt.content), len(replayed), "content must be replayed in full")
		})
	}
}

func TestSniffContentType_ReadError(t *testing.T) {
	t.Parallel()

	_, _, err := SniffContentType(io.MultiReader(strings.NewReader("ab"), errReader{}))
	assert.Error(t, err)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, io.ErrClosedPipe }
