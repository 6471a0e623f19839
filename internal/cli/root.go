// Package cli implements galleryctl, the curator's tool for checking,
// inspecting and publishing the exhibition documents.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/timmy/machines-eye/internal/config"
	"github.com/timmy/machines-eye/internal/logger"
	"github.com/timmy/machines-eye/internal/repository"
	"github.com/timmy/machines-eye/internal/service"
	"github.com/timmy/machines-eye/internal/source"
	"github.com/timmy/machines-eye/internal/storage"
)

// options are the flags shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
}

// NewRootCmd builds the galleryctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "galleryctl",
		Short: "Curator tooling for The Machine's Eye",
		Long: `galleryctl checks, inspects and publishes the two documents the
exhibition is built from: the VLM corpus and the curated gallery layout.

It reads the same configuration as the API server.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetDefaultLogger(logger.New(&logger.Config{
				Level:       opts.logLevel,
				Format:      "text",
				ServiceName: "galleryctl",
				Output:      cmd.ErrOrStderr(),
			}))
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newValidateCmd(opts))
	cmd.AddCommand(newInspectCmd(opts))
	cmd.AddCommand(newSeedCmd(opts))
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newPublishCmd(opts))

	return cmd
}

func (o *options) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// workspace is everything a subcommand may need, opened from config.
type workspace struct {
	cfg     *config.Config
	storage storage.ObjectStorage
	deps    source.Dependencies
}

func (o *options) openWorkspace() (*workspace, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewStorage(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	ws := &workspace{
		cfg:     cfg,
		storage: store,
		deps:    source.Dependencies{HTTP: cfg.HTTP, Storage: store},
	}

	if cfg.Corpus.Source == config.SourceDatabase {
		repo, err := ws.works()
		if err != nil {
			return nil, err
		}
		ws.deps.Works = repo
	}

	return ws, nil
}

// works opens the configured database, migrating the schema if needed.
func (w *workspace) works() (*repository.WorkRepository, error) {
	dbCfg := w.cfg.Database
	dbCfg.AutoMigrate = true

	db, err := repository.InitDB(&dbCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repository.NewWorkRepository(db), nil
}

// documents returns the loaders for the configured corpus and exhibition.
func (w *workspace) documents() (source.DocumentSet, error) {
	corpus, err := source.NewCorpusLoader(w.cfg.Corpus, w.deps)
	if err != nil {
		return source.DocumentSet{}, fmt.Errorf("failed to configure corpus source: %w", err)
	}
	exhibition, err := source.NewExhibitionLoader(w.cfg.Exhibition, w.deps)
	if err != nil {
		return source.DocumentSet{}, fmt.Errorf("failed to configure exhibition source: %w", err)
	}
	return source.DocumentSet{Corpus: corpus, Exhibition: exhibition}, nil
}

// snapshot loads both documents into a snapshot.
func (w *workspace) snapshot(ctx context.Context) (*service.Snapshot, error) {
	docs, err := w.documents()
	if err != nil {
		return nil, err
	}
	works, doc, err := docs.Load(ctx)
	if err != nil {
		return nil, err
	}
	return service.NewSnapshot(works, doc), nil
}
