// Package storage forwards uploaded images to the external media host.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"infinitybasket/config"
	"infinitybasket/internal/domain/lifecycle"
	"infinitybasket/internal/domain/service"
	"infinitybasket/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL schemes supported out of the box.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobImageStore implements service.ImageStore on top of a gocloud.dev
// bucket. The bucket backend is chosen by the configured URL scheme, so the
// same code serves S3, GCS and a local directory.
type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBlobImageStore opens the configured bucket and manages its lifetime.
func NewBlobImageStore(params Params) (service.ImageStore, error) {
	if params.Config.Media.BucketURL == "" {
		return nil, errors.New("media.bucketUrl must be set")
	}
	if params.Config.Media.PublicBaseURL == "" {
		return nil, errors.New("media.publicBaseUrl must be set")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Media.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload stores one image under a random key and returns its public URL.
func (s *blobImageStore) Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	key := uuid.NewString() + strings.ToLower(path.Ext(filename))

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		// Abort the write so no partial object is committed.
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to copy image to bucket")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit image to bucket")
	}

	url := s.publicBaseURL + "/" + key

	s.logger.LogAttrs(ctx, slog.LevelDebug, "Image uploaded",
		slog.String("key", key),
		slog.String("url", url),
	)

	return url, nil
}
