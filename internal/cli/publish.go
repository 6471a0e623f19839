package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/spf13/cobra"
	"github.com/timmy/machines-eye/internal/domain"
	"github.com/timmy/machines-eye/internal/source"
	"github.com/timmy/machines-eye/internal/storage"
)

// bucketEnsurer is implemented by stores that can create their bucket.
type bucketEnsurer interface {
	EnsureBucket(ctx context.Context) error
}

type publishOptions struct {
	parquet bool
	prefix  string
}

func newPublishCmd(opts *options) *cobra.Command {
	var popts publishOptions

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the corpus and gallery documents to object storage",
		Long: `Load both documents from their configured sources and upload them to the
configured storage, where servers using source: storage will read them.

The corpus is written as JSON, or as parquet with --parquet. Keys come from
corpus.key and exhibition.key, optionally under --prefix.`,
		Example: `  galleryctl publish
  galleryctl publish --parquet --prefix releases/2026-10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.openWorkspace()
			if err != nil {
				return err
			}
			docs, err := ws.documents()
			if err != nil {
				return err
			}
			works, doc, err := docs.Load(cmd.Context())
			if err != nil {
				return err
			}
			return runPublish(cmd.Context(), cmd.OutOrStdout(), ws.storage,
				ws.cfg.Corpus.Key, ws.cfg.Exhibition.Key, works, doc, popts)
		},
	}

	cmd.Flags().BoolVar(&popts.parquet, "parquet", false, "Write the corpus as parquet")
	cmd.Flags().StringVar(&popts.prefix, "prefix", "", "Key prefix for both documents")

	return cmd
}

func runPublish(ctx context.Context, out io.Writer, store storage.ObjectStorage, corpusKey, exhibitionKey string,
	works []domain.ArtworkRecord, doc domain.ExhibitionDocument, opts publishOptions) error {
	if b, ok := store.(bucketEnsurer); ok {
		if err := b.EnsureBucket(ctx); err != nil {
			return err
		}
	}

	var corpus bytes.Buffer
	contentType := "application/json"
	if opts.parquet {
		corpusKey = strings.TrimSuffix(corpusKey, path.Ext(corpusKey)) + ".parquet"
		contentType = "application/vnd.apache.parquet"
		if err := source.WriteCorpusParquet(&corpus, works); err != nil {
			return err
		}
	} else if err := json.NewEncoder(&corpus).Encode(domain.CorpusDocument{Works: works}); err != nil {
		return fmt.Errorf("failed to encode corpus: %w", err)
	}

	var exhibition bytes.Buffer
	if err := json.NewEncoder(&exhibition).Encode(doc); err != nil {
		return fmt.Errorf("failed to encode exhibition: %w", err)
	}

	uploads := []struct {
		key         string
		body        *bytes.Buffer
		contentType string
	}{
		{path.Join(opts.prefix, corpusKey), &corpus, contentType},
		{path.Join(opts.prefix, exhibitionKey), &exhibition, "application/json"},
	}

	for _, u := range uploads {
		size := int64(u.body.Len())
		if err := store.Upload(ctx, u.key, u.body, size, u.contentType); err != nil {
			return fmt.Errorf("failed to upload %s: %w", u.key, err)
		}
		fmt.Fprintf(out, "uploaded %s (%d bytes) -> %s\n", u.key, size, store.GetURL(u.key))
	}
	return nil
}
