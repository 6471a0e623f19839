package storage

import (
	"context"
	"io"
	"strings"
)

// ObjectStorage defines the interface for object storage operations
type ObjectStorage interface {
	// Upload uploads an object to storage
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error

	// Download downloads an object from storage
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// GetURL returns the URL for accessing an object
	GetURL(key string) string

	// Exists checks if an object exists
	Exists(ctx context.Context, key string) (bool, error)
}

// ImageKey turns an exhibition image path such as
// "/gallery/eastern/56197_Shomei_Tomatsu.jpg" into an object key.
func ImageKey(imagePath string) string {
	return strings.TrimLeft(imagePath, "/")
}

// IsAbsoluteURL reports whether an image path already points off-site.
func IsAbsoluteURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// ResolveImageURL returns the public URL for an exhibition image path.
// Absolute URLs are returned unchanged.
func ResolveImageURL(s ObjectStorage, imagePath string) string {
	if imagePath == "" || IsAbsoluteURL(imagePath) {
		return imagePath
	}
	return s.GetURL(ImageKey(imagePath))
}
