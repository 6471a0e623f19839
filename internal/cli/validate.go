package cli

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"sort"

	"github.com/spf13/cobra"
	"github.com/timmy/machines-eye/internal/domain"
	"github.com/timmy/machines-eye/internal/service"
	"github.com/timmy/machines-eye/internal/storage"
	_ "golang.org/x/image/webp"
)

// scoreDriftTolerance is how far a pair's copied score may sit from the
// corpus score before it is reported.
const scoreDriftTolerance = 0.05

type validateOptions struct {
	images bool
	probe  bool
}

// report collects findings. Problems fail the run, warnings do not.
type report struct {
	problems []string
	warnings []string
}

func (r *report) problem(format string, args ...any) {
	r.problems = append(r.problems, fmt.Sprintf(format, args...))
}

func (r *report) warn(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func newValidateCmd(opts *options) *cobra.Command {
	var vopts validateOptions

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that every curated pair resolves against the corpus",
		Long: `Load the corpus and the gallery layout and check them against each other.

Every pair side and both mantlepiece works must exist in the corpus. Scores
copied into the gallery layout are compared with the corpus and drift is
reported as a warning. With --images, every referenced image must exist in
the configured storage; --probe also decodes each image header.`,
		Example: `  # Check references only
  galleryctl validate

  # Also check that every image exists and decodes
  galleryctl validate --images --probe`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.openWorkspace()
			if err != nil {
				return err
			}
			snap, err := ws.snapshot(cmd.Context())
			if err != nil {
				return err
			}
			return runValidate(cmd.Context(), cmd.OutOrStdout(), snap, ws.storage, vopts)
		},
	}

	cmd.Flags().BoolVar(&vopts.images, "images", false, "Check that referenced images exist in storage")
	cmd.Flags().BoolVar(&vopts.probe, "probe", false, "Decode each image header (implies --images)")

	return cmd
}

func runValidate(ctx context.Context, out io.Writer, snap *service.Snapshot, store storage.ObjectStorage, opts validateOptions) error {
	var r report

	checkReferences(snap, &r)
	checkDrift(snap, &r)
	if opts.images || opts.probe {
		checkImages(ctx, snap, store, opts.probe, &r)
	}

	pairs := len(snap.Exhibition.AllPairs())
	fmt.Fprintf(out, "%d works, %d sections, %d pairs\n", snap.Corpus.Len(), len(snap.Exhibition.Sections()), pairs)

	for _, w := range r.warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	for _, p := range r.problems {
		fmt.Fprintf(out, "error: %s\n", p)
	}

	if len(r.problems) > 0 {
		return fmt.Errorf("validation failed with %d problems", len(r.problems))
	}
	fmt.Fprintln(out, "ok")
	return nil
}

func checkReferences(snap *service.Snapshot, r *report) {
	for _, u := range snap.UnresolvedReferences() {
		r.problem("%s/%s references missing works %v", u.SectionID, u.Pair.ID, u.Missing)
	}

	m := snap.Exhibition.Mantlepiece()
	for _, side := range []domain.ArtworkSummary{m.Asian, m.Western} {
		if _, ok := snap.Corpus.GetByObjectID(side.ObjectID); !ok {
			r.problem("mantlepiece references missing work %d", side.ObjectID)
		}
	}

	if dupes := snap.Corpus.Len() - snap.Corpus.Stats().TotalWorks; dupes > 0 {
		r.warn("corpus has %d duplicate object_id entries; the last one wins", dupes)
	}

	seen := make(map[string]bool)
	for _, section := range snap.Exhibition.Sections() {
		if seen[section.ID] {
			r.warn("section %s is defined more than once; the first one wins", section.ID)
		}
		seen[section.ID] = true
	}
}

// checkDrift compares scores copied into the layout with the corpus.
func checkDrift(snap *service.Snapshot, r *report) {
	check := func(where string, s domain.ArtworkSummary) {
		record, ok := snap.Corpus.GetByObjectID(s.ObjectID)
		if !ok {
			return
		}
		if math.Abs(record.Scores.Humanization-s.Humanization) > scoreDriftTolerance ||
			math.Abs(record.Scores.Othering-s.Othering) > scoreDriftTolerance {
			r.warn("%s: work %d scores %.1f/%.1f differ from corpus %.1f/%.1f", where, s.ObjectID,
				s.Humanization, s.Othering, record.Scores.Humanization, record.Scores.Othering)
		}
	}

	m := snap.Exhibition.Mantlepiece()
	check("mantlepiece", m.Asian)
	check("mantlepiece", m.Western)
	for _, section := range snap.Exhibition.Sections() {
		for _, pair := range section.Pairs {
			where := section.ID + "/" + pair.ID
			check(where, pair.Left)
			check(where, pair.Right)
		}
	}
}

// imagePaths lists every distinct local image path in the layout.
func imagePaths(snap *service.Snapshot) []string {
	seen := make(map[string]struct{})
	add := func(s domain.ArtworkSummary) {
		if s.ImagePath != "" && !storage.IsAbsoluteURL(s.ImagePath) {
			seen[s.ImagePath] = struct{}{}
		}
	}

	m := snap.Exhibition.Mantlepiece()
	add(m.Asian)
	add(m.Western)
	for _, pair := range snap.Exhibition.AllPairs() {
		add(pair.Left)
		add(pair.Right)
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func checkImages(ctx context.Context, snap *service.Snapshot, store storage.ObjectStorage, probe bool, r *report) {
	for _, path := range imagePaths(snap) {
		key := storage.ImageKey(path)

		exists, err := store.Exists(ctx, key)
		if err != nil {
			r.problem("image %s: %v", path, err)
			continue
		}
		if !exists {
			r.problem("image %s is missing from storage", path)
			continue
		}
		if !probe {
			continue
		}

		if err := probeImage(ctx, store, key); err != nil {
			r.problem("image %s: %v", path, err)
		}
	}
}

// probeImage decodes the image header (jpeg, png or webp).
func probeImage(ctx context.Context, store storage.ObjectStorage, key string) error {
	rc, err := store.Download(ctx, key)
	if err != nil {
		return err
	}
	defer rc.Close()

	cfg, _, err := image.DecodeConfig(rc)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return fmt.Errorf("image has zero size")
	}
	return nil
}
