package service

import (
	"context"
	"errors"
	"io"
)

// ImageFile is one uploaded image handed to the image store.
type ImageFile struct {
	Name        string // Original file name, used for the object extension.
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ImageStore hosts car images and serves them by public URL.
type ImageStore interface {
	// Upload stores file under folder and returns its public URL.
	Upload(ctx context.Context, file ImageFile, folder string) (string, error)

	// DeleteByIDs removes stored objects by public ID. Unknown IDs are ignored.
	DeleteByIDs(ctx context.Context, ids []string) error

	// PublicID maps a URL produced by Upload back to its public ID.
	// It returns "" for URLs the store does not own.
	PublicID(url string) string
}

// ErrImageObjectNotFound is returned by ImageReader.Open for unknown keys.
var ErrImageObjectNotFound = errors.New("image object not found")

// ImageReader streams stored images back out, for stores that are not
// fronted by a CDN.
type ImageReader interface {
	// Open returns the object stored under publicID and its content type.
	Open(ctx context.Context, publicID string) (io.ReadCloser, string, error)
}
