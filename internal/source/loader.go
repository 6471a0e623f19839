package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/timmy/machines-eye/internal/config"
	"github.com/timmy/machines-eye/internal/domain"
	"github.com/timmy/machines-eye/internal/logger"
	"github.com/timmy/machines-eye/internal/repository"
	"github.com/timmy/machines-eye/internal/storage"
)

// DocumentCorpusLoader decodes the corpus from a Source.
type DocumentCorpusLoader struct {
	src    Source
	format string
}

// NewDocumentCorpusLoader creates a corpus loader; an empty format is
// detected from the source name.
func NewDocumentCorpusLoader(src Source, format string) *DocumentCorpusLoader {
	return &DocumentCorpusLoader{src: src, format: DetectFormat(src.Name(), format)}
}

func (l *DocumentCorpusLoader) Describe() string { return l.src.GetSourceID() }

// LoadCorpus fetches and decodes the corpus.
func (l *DocumentCorpusLoader) LoadCorpus(ctx context.Context) ([]domain.ArtworkRecord, error) {
	start := time.Now()

	rc, err := l.src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	works, err := DecodeCorpus(rc, l.format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.src.GetSourceID(), err)
	}

	logger.With(logger.Fields{
		logger.FieldSource: l.src.GetSourceID(),
		"format":           l.format,
	}).WithCount(len(works)).WithDuration(time.Since(start).Milliseconds()).Info(ctx, "Corpus decoded")

	return works, nil
}

// DocumentExhibitionLoader decodes the exhibition document from a Source.
type DocumentExhibitionLoader struct {
	src Source
}

func NewDocumentExhibitionLoader(src Source) *DocumentExhibitionLoader {
	return &DocumentExhibitionLoader{src: src}
}

func (l *DocumentExhibitionLoader) Describe() string { return l.src.GetSourceID() }

// LoadExhibition fetches and decodes the exhibition document.
func (l *DocumentExhibitionLoader) LoadExhibition(ctx context.Context) (domain.ExhibitionDocument, error) {
	rc, err := l.src.Open(ctx)
	if err != nil {
		return domain.ExhibitionDocument{}, err
	}
	defer rc.Close()

	doc, err := DecodeExhibition(rc)
	if err != nil {
		return domain.ExhibitionDocument{}, fmt.Errorf("%s: %w", l.src.GetSourceID(), err)
	}
	return doc, nil
}

// DatabaseCorpusLoader reads a corpus previously seeded into the SQL store.
type DatabaseCorpusLoader struct {
	repo *repository.WorkRepository
}

func NewDatabaseCorpusLoader(repo *repository.WorkRepository) *DatabaseCorpusLoader {
	return &DatabaseCorpusLoader{repo: repo}
}

func (l *DatabaseCorpusLoader) Describe() string { return "database:works" }

// LoadCorpus reads every stored work in corpus order.
func (l *DatabaseCorpusLoader) LoadCorpus(ctx context.Context) ([]domain.ArtworkRecord, error) {
	works, err := l.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load works from database: %w", err)
	}
	return works, nil
}

// Dependencies are the clients a configured loader may need.
// Storage and Works may be nil when no configured source uses them.
type Dependencies struct {
	HTTP    config.HTTPClientConfig
	Storage storage.ObjectStorage
	Works   *repository.WorkRepository
}

// NewSource builds the Source a document config points at.
// Parameters:
//   - cfg: document location.
//   - deps: shared clients.
// Returns:
//   - Source: configured source.
//   - error: non-nil if the kind is unknown or a dependency is missing.
func NewSource(cfg config.DocumentConfig, deps Dependencies) (Source, error) {
	switch cfg.Source {
	case config.SourceFile:
		return NewFileSource(cfg.Path), nil
	case config.SourceHTTP:
		return NewHTTPSource(cfg.URL, deps.HTTP.Timeout, deps.HTTP.RetryCount), nil
	case config.SourceStorage:
		if deps.Storage == nil {
			return nil, errors.New("storage source configured without object storage")
		}
		return NewObjectSource(deps.Storage, cfg.Key), nil
	default:
		return nil, fmt.Errorf("unsupported document source %q", cfg.Source)
	}
}

// NewCorpusLoader builds the corpus loader for cfg.
func NewCorpusLoader(cfg config.DocumentConfig, deps Dependencies) (CorpusLoader, error) {
	if cfg.Source == config.SourceDatabase {
		if deps.Works == nil {
			return nil, errors.New("database corpus source configured without a database")
		}
		return NewDatabaseCorpusLoader(deps.Works), nil
	}

	src, err := NewSource(cfg, deps)
	if err != nil {
		return nil, err
	}
	return NewDocumentCorpusLoader(src, cfg.Format), nil
}

// NewExhibitionLoader builds the exhibition loader for cfg.
func NewExhibitionLoader(cfg config.DocumentConfig, deps Dependencies) (ExhibitionLoader, error) {
	src, err := NewSource(cfg, deps)
	if err != nil {
		return nil, err
	}
	return NewDocumentExhibitionLoader(src), nil
}

// DocumentSet loads both documents the registry needs.
type DocumentSet struct {
	Corpus     CorpusLoader
	Exhibition ExhibitionLoader
}

// Load fetches the corpus and then the exhibition document.
func (d DocumentSet) Load(ctx context.Context) ([]domain.ArtworkRecord, domain.ExhibitionDocument, error) {
	works, err := d.Corpus.LoadCorpus(ctx)
	if err != nil {
		return nil, domain.ExhibitionDocument{}, fmt.Errorf("failed to load corpus: %w", err)
	}

	doc, err := d.Exhibition.LoadExhibition(ctx)
	if err != nil {
		return nil, domain.ExhibitionDocument{}, fmt.Errorf("failed to load exhibition: %w", err)
	}

	return works, doc, nil
}
