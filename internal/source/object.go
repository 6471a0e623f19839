package source

import (
	"context"
	"io"

	"github.com/timmy/machines-eye/internal/storage"
)

// ObjectSource reads a document from object storage.
type ObjectSource struct {
	store storage.ObjectStorage
	key   string
}

// NewObjectSource creates a source for key in store.
func NewObjectSource(store storage.ObjectStorage, key string) *ObjectSource {
	return &ObjectSource{store: store, key: key}
}

func (s *ObjectSource) GetSourceID() string { return "storage:" + s.key }
func (s *ObjectSource) Name() string        { return s.key }

// Open downloads the object.
func (s *ObjectSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return s.store.Download(ctx, s.key)
}
