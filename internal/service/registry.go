package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/timmy/machines-eye/internal/domain"
	"github.com/timmy/machines-eye/internal/logger"
	"github.com/timmy/machines-eye/internal/repository"
)

// Loader fetches the two documents a snapshot is built from.
type Loader interface {
	Load(ctx context.Context) ([]domain.ArtworkRecord, domain.ExhibitionDocument, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context) ([]domain.ArtworkRecord, domain.ExhibitionDocument, error)

func (f LoaderFunc) Load(ctx context.Context) ([]domain.ArtworkRecord, domain.ExhibitionDocument, error) {
	return f(ctx)
}

// Snapshot is one immutable, internally consistent load of the corpus and
// the exhibition. Every lookup made through a snapshot sees the same data.
type Snapshot struct {
	Corpus     *repository.CorpusIndex
	Exhibition *repository.Exhibition
	Lens       *LensService
	Comparison *ComparisonService
	Version    int64
	LoadedAt   time.Time
}

// NewSnapshot indexes the documents and wires the read services.
func NewSnapshot(works []domain.ArtworkRecord, doc domain.ExhibitionDocument) *Snapshot {
	corpus := repository.NewCorpusIndex(works)
	return &Snapshot{
		Corpus:     corpus,
		Exhibition: repository.NewExhibition(doc),
		Lens:       NewLensService(corpus),
		Comparison: NewComparisonService(corpus),
		LoadedAt:   time.Now(),
	}
}

// PairReport joins a curated pair with its gap and whatever the corpus
// knows about each side. Unresolved sides are listed in Missing rather
// than failing the whole report.
// Parameters:
//   - sectionID: section containing the pair.
//   - pairID: pair ID within the section.
// Returns:
//   - *domain.PairReport: the report.
//   - bool: false when the section or pair does not exist.
func (s *Snapshot) PairReport(sectionID, pairID string) (*domain.PairReport, bool) {
	pair, ok := s.Exhibition.GetPair(sectionID, pairID)
	if !ok {
		return nil, false
	}

	report := &domain.PairReport{
		SectionID: sectionID,
		Pair:      *pair,
		Gap:       ComputeGap(*pair),
	}

	if left, ok := s.Lens.GetLensData(pair.Left.ObjectID); ok {
		report.Left = left
	} else {
		report.Missing = append(report.Missing, pair.Left.ObjectID)
	}
	if right, ok := s.Lens.GetLensData(pair.Right.ObjectID); ok {
		report.Right = right
	} else {
		report.Missing = append(report.Missing, pair.Right.ObjectID)
	}

	if report.Left != nil && report.Right != nil {
		report.Comparison, _ = s.Comparison.GetComparisonSummary(pair.Left.ObjectID, pair.Right.ObjectID)
	}

	return report, true
}

// UnresolvedReferences lists every pair side whose object ID is absent
// from the corpus, in section order.
func (s *Snapshot) UnresolvedReferences() []domain.PairReport {
	var unresolved []domain.PairReport
	for _, section := range s.Exhibition.Sections() {
		for _, pair := range section.Pairs {
			var missing []int
			for _, id := range []int{pair.Left.ObjectID, pair.Right.ObjectID} {
				if _, ok := s.Corpus.GetByObjectID(id); !ok {
					missing = append(missing, id)
				}
			}
			if len(missing) > 0 {
				unresolved = append(unresolved, domain.PairReport{SectionID: section.ID, Pair: pair, Missing: missing})
			}
		}
	}
	return unresolved
}

// Registry publishes snapshots. Readers take the current snapshot without
// locking; a reload builds a complete new snapshot before swapping it in.
type Registry struct {
	loader  Loader
	current atomic.Pointer[Snapshot]
	version atomic.Int64

	// reloadMu serializes loads so versions publish in order.
	reloadMu sync.Mutex
}

// NewRegistry creates a registry with an empty snapshot.
func NewRegistry(loader Loader) *Registry {
	r := &Registry{loader: loader}
	r.current.Store(NewSnapshot(nil, domain.ExhibitionDocument{}))
	return r
}

// NewStaticRegistry creates a registry already holding the given documents.
// Reload on a static registry republishes the same documents.
func NewStaticRegistry(works []domain.ArtworkRecord, doc domain.ExhibitionDocument) *Registry {
	r := NewRegistry(LoaderFunc(func(ctx context.Context) ([]domain.ArtworkRecord, domain.ExhibitionDocument, error) {
		return works, doc, nil
	}))
	r.publish(NewSnapshot(works, doc))
	return r
}

// Snapshot returns the current snapshot.
func (r *Registry) Snapshot() *Snapshot {
	return r.current.Load()
}

// Load performs the initial load.
func (r *Registry) Load(ctx context.Context) error {
	_, err := r.Reload(ctx)
	return err
}

// Reload fetches both documents and atomically replaces the snapshot.
// On failure the previous snapshot stays in place.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - *Snapshot: the newly published snapshot.
//   - error: non-nil if loading fails.
func (r *Registry) Reload(ctx context.Context) (*Snapshot, error) {
	if r.loader == nil {
		return nil, errors.New("registry has no loader")
	}

	r.reloadMu.Lock()
	defer r.reloadMu.Unlock()

	start := time.Now()
	works, doc, err := r.loader.Load(ctx)
	if err != nil {
		logger.With(logger.Fields{}).WithStatus("failed").Error(ctx, "Exhibition reload failed: %v", err)
		return nil, err
	}

	snap := NewSnapshot(works, doc)
	r.publish(snap)

	logger.With(logger.Fields{
		"version":  snap.Version,
		"sections": len(snap.Exhibition.Sections()),
	}).WithCount(snap.Corpus.Len()).
		WithDuration(time.Since(start).Milliseconds()).
		WithStatus("ok").
		Info(ctx, "Exhibition snapshot published")

	if unresolved := snap.UnresolvedReferences(); len(unresolved) > 0 {
		logger.CtxWarn(ctx, "%d curated pairs reference works missing from the corpus", len(unresolved))
	}

	return snap, nil
}

func (r *Registry) publish(snap *Snapshot) {
	snap.Version = r.version.Add(1)
	r.current.Store(snap)
}
