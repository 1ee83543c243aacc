package service

import (
	"context"
	"io"
)

// ImageStore forwards uploaded file bytes to the external image host and
// returns the public URL of the stored object. Only URLs are ever persisted.
type ImageStore interface {
	Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error)
}
