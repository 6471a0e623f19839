package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/timmy/machines-eye/internal/config"
	"github.com/timmy/machines-eye/internal/logger"
	"github.com/timmy/machines-eye/internal/repository"
	"github.com/timmy/machines-eye/internal/source"
)

func newSeedCmd(opts *options) *cobra.Command {
	var from string
	var format string
	var replace bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import the corpus document into the database",
		Long: `Import the VLM corpus into the works table so the server can run with
corpus.source: database.

By default the corpus is read from the configured corpus document; --from
reads a local json, jsonl or parquet file instead. Existing rows are updated
in place unless --replace is given, which clears the table first.`,
		Example: `  galleryctl seed --from ./data/vlm_corpus.json
  galleryctl seed --from ./export/corpus.parquet --replace`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.openWorkspace()
			if err != nil {
				return err
			}

			var loader source.CorpusLoader
			switch {
			case from != "":
				loader = source.NewDocumentCorpusLoader(source.NewFileSource(from), format)
			case ws.cfg.Corpus.Source == config.SourceDatabase:
				return fmt.Errorf("corpus is already configured to load from the database; use --from")
			default:
				if loader, err = source.NewCorpusLoader(ws.cfg.Corpus, ws.deps); err != nil {
					return err
				}
			}

			repo, err := ws.works()
			if err != nil {
				return err
			}
			return runSeed(cmd.Context(), cmd.OutOrStdout(), loader, repo, replace)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Corpus file to import instead of the configured source")
	cmd.Flags().StringVar(&format, "format", "", "Override format detection for --from (json, jsonl, parquet)")
	cmd.Flags().BoolVar(&replace, "replace", false, "Delete existing works before importing")

	return cmd
}

func runSeed(ctx context.Context, out io.Writer, loader source.CorpusLoader, repo *repository.WorkRepository, replace bool) error {
	start := time.Now()

	works, err := loader.LoadCorpus(ctx)
	if err != nil {
		return err
	}

	if replace {
		err = repo.ReplaceAll(ctx, works)
	} else {
		err = repo.UpsertAll(ctx, works)
	}
	if err != nil {
		return err
	}

	total, err := repo.Count(ctx)
	if err != nil {
		return err
	}

	logger.With(logger.Fields{
		logger.FieldSource: loader.Describe(),
		"replace":          replace,
	}).WithCount(len(works)).
		WithDuration(time.Since(start).Milliseconds()).
		Info(ctx, "Corpus seeded")

	fmt.Fprintf(out, "imported %d works from %s (%d in database)\n", len(works), loader.Describe(), total)
	return nil
}
