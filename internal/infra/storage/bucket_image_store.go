// Package storage keeps car images in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"carhub/internal/domain/service"
	"carhub/internal/errors"

	"github.com/google/uuid"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// ErrFileTooLarge is returned by Upload when a file exceeds the configured size limit.
var ErrFileTooLarge = errors.New("image file exceeds the size limit")

var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// BucketImageStore implements service.ImageStore and service.ImageReader.
// Objects are keyed "<folder>/<uuid><ext>" and published as "<publicBaseURL>/<key>".
type BucketImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxFileSize   int64
	logger        *slog.Logger
}

// NewBucketImageStore wraps an open bucket. maxFileSize <= 0 disables the size check.
func NewBucketImageStore(bucket *blob.Bucket, publicBaseURL string, maxFileSize int64, logger *slog.Logger) *BucketImageStore {
	return &BucketImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		maxFileSize:   maxFileSize,
		logger:        logger,
	}
}

func (s *BucketImageStore) Upload(ctx context.Context, file service.ImageFile, folder string) (string, error) {
	if file.Reader == nil {
		return "", errors.New("image file has no content")
	}

	key := path.Join(folder, uuid.NewString()+extensionFor(file))

	// Cancelling the writer's context discards a partially written object.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: file.ContentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	src := file.Reader
	if s.maxFileSize > 0 {
		src = io.LimitReader(file.Reader, s.maxFileSize+1)
	}

	n, err := io.Copy(w, src)
	if err == nil && s.maxFileSize > 0 && n > s.maxFileSize {
		err = ErrFileTooLarge
	}
	if err != nil {
		cancel()
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", key)
	}

	s.logger.DebugContext(ctx, "Image stored", slog.String("key", key), slog.Int64("bytes", n))

	return s.publicBaseURL + "/" + key, nil
}

// DeleteByIDs deletes every id, skipping ones already gone, and reports all failures together.
func (s *BucketImageStore) DeleteByIDs(ctx context.Context, ids []string) error {
	var errs []error
	for _, id := range ids {
		if err := s.bucket.Delete(ctx, id); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			errs = append(errs, errors.Wrapf(err, "failed to delete %s", id))
		}
	}

	return errors.Join(errs...)
}

func (s *BucketImageStore) PublicID(url string) string {
	prefix := s.publicBaseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return ""
	}

	key := strings.TrimPrefix(url, prefix)
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	if !validKey(key) {
		return ""
	}

	return key
}

func (s *BucketImageStore) Open(ctx context.Context, publicID string) (io.ReadCloser, string, error) {
	if !validKey(publicID) {
		return nil, "", service.ErrImageObjectNotFound
	}

	r, err := s.bucket.NewReader(ctx, publicID, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrImageObjectNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", publicID)
	}

	return r, r.ContentType(), nil
}

func extensionFor(file service.ImageFile) string {
	if ext, ok := extByContentType[file.ContentType]; ok {
		return ext
	}

	return strings.ToLower(path.Ext(file.Name))
}

// validKey rejects empty keys and any key that would escape its folder.
func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") {
		return false
	}

	return path.Clean(key) == key && !strings.HasPrefix(key, "..")
}
