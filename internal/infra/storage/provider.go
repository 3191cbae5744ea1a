package storage

import (
	"context"
	"log/slog"

	"carhub/config"
	"carhub/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL schemes accepted by imageStore.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens imageStore.bucketUrl and closes the bucket when the app stops.
func New(params Params) (*BucketImageStore, error) {
	cfg := params.Config.ImageStore
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("imageStore.bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open image bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Image store ready",
		slog.String("bucket", cfg.BucketURL),
		slog.String("publicBaseUrl", cfg.PublicBaseURL))

	return NewBucketImageStore(bucket, cfg.PublicBaseURL, cfg.MaxFileSize, params.Logger), nil
}
