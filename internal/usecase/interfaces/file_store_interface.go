package interfaces

import (
	"context"
	"io"
)

// IFileStore abstracts blob storage (S3) for client quotation files.
type IFileStore interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)
}
