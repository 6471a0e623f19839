package source

import (
	"context"
	"fmt"
	"io"
	"os"
)

// FileSource reads a document from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) GetSourceID() string { return "file:" + s.path }
func (s *FileSource) Name() string        { return s.path }

// Open opens the file for reading.
func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	return f, nil
}
