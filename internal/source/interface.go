package source

import (
	"context"
	"io"

	"github.com/timmy/machines-eye/internal/domain"
)

// Source defines where a raw exhibition document is read from.
type Source interface {
	// GetSourceID returns the unique identifier for this source.
	// Parameters: none.
	// Returns:
	//   - string: stable source identifier, e.g. "file:./data/gallery.json".
	GetSourceID() string

	// Name returns the file name used for format detection.
	// Parameters: none.
	// Returns:
	//   - string: path, URL path or object key of the document.
	Name() string

	// Open fetches the document.
	// Parameters:
	//   - ctx: context for cancellation and deadlines.
	// Returns:
	//   - io.ReadCloser: document bytes; the caller closes it.
	//   - error: non-nil if the document cannot be fetched.
	Open(ctx context.Context) (io.ReadCloser, error)
}

// CorpusLoader produces the artwork records in corpus order.
type CorpusLoader interface {
	LoadCorpus(ctx context.Context) ([]domain.ArtworkRecord, error)
	Describe() string
}

// ExhibitionLoader produces the curated exhibition document.
type ExhibitionLoader interface {
	LoadExhibition(ctx context.Context) (domain.ExhibitionDocument, error)
	Describe() string
}
