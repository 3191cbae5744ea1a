package util

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// sniffLen is the number of bytes http.DetectContentType considers.
const sniffLen = 512

// FormatBytes formats bytes into human readable format.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for rest := n / unit; rest >= unit && exp < len(units)-1; rest /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), units[exp])
}

// SniffContentType reads the head of r and returns its detected MIME type
// together with a reader that still yields the complete content.
func SniffContentType(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", nil, errors.Wrap(err, "failed to read file header")
	}
	head = head[:n]

	return http.DetectContentType(head), io.MultiReader(bytes.NewReader(head), r), nil
}
