package source

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/timmy/machines-eye/internal/config"
	"github.com/timmy/machines-eye/internal/domain"
	"github.com/timmy/machines-eye/internal/repository"
	"github.com/timmy/machines-eye/internal/storage"
)

const (
	sampleCorpusPath     = "../../data/vlm_corpus.json"
	sampleExhibitionPath = "../../data/gallery.json"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		override string
		expected string
	}{
		{"json extension", "data/vlm_corpus.json", "", FormatJSON},
		{"parquet extension", "exports/corpus.PARQUET", "", FormatParquet},
		{"jsonl extension", "corpus.jsonl", "", FormatJSONL},
		{"ndjson extension", "corpus.ndjson", "", FormatJSONL},
		{"no extension", "/api/corpus", "", FormatJSON},
		{"override wins", "corpus.json", "Parquet", FormatParquet},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectFormat(tc.file, tc.override); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestDecodeCorpus_JSONShapes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		format  string
		wantIDs []int
		wantErr bool
	}{
		{name: "wrapped", input: `{"works": [{"object_id": 1}, {"object_id": 2}]}`, format: FormatJSON, wantIDs: []int{1, 2}},
		{name: "bare array", input: ` [{"object_id": 3}]`, format: FormatJSON, wantIDs: []int{3}},
		{name: "jsonl", input: "{\"object_id\": 4}\n\n{\"object_id\": 5}\n", format: FormatJSONL, wantIDs: []int{4, 5}},
		{name: "missing works", input: `{"items": []}`, format: FormatJSON, wantErr: true},
		{name: "malformed", input: `{"works": [`, format: FormatJSON, wantErr: true},
		{name: "bad jsonl line", input: "{\"object_id\": 4}\nnot json\n", format: FormatJSONL, wantErr: true},
		{name: "unknown format", input: `{}`, format: "csv", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			works, err := DecodeCorpus(strings.NewReader(tc.input), tc.format)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(works) != len(tc.wantIDs) {
				t.Fatalf("expected %d works, got %d", len(tc.wantIDs), len(works))
			}
			for i, id := range tc.wantIDs {
				if works[i].ObjectID != id {
					t.Errorf("position %d: expected %d, got %d", i, id, works[i].ObjectID)
				}
			}
		})
	}
}

func TestDecodeCorpus_Parquet(t *testing.T) {
	works, err := DecodeCorpus(mustOpen(t, sampleCorpusPath), FormatJSON)
	if err != nil {
		t.Fatalf("failed to decode sample corpus: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCorpusParquet(&buf, works); err != nil {
		t.Fatalf("failed to write parquet: %v", err)
	}

	decoded, err := DecodeCorpus(&buf, FormatParquet)
	if err != nil {
		t.Fatalf("failed to read parquet: %v", err)
	}
	if len(decoded) != len(works) {
		t.Fatalf("expected %d works, got %d", len(works), len(decoded))
	}

	first := decoded[0]
	if first.ObjectID != 56197 || domain.StringValue(first.Subject.NameIfPresent) != "Hiromi Hosaka" {
		t.Errorf("unexpected first record: %d %q", first.ObjectID, domain.StringValue(first.Subject.NameIfPresent))
	}
	if len(first.Comparative.KeyContrastPoints) != 4 {
		t.Errorf("expected 4 contrast points, got %d", len(first.Comparative.KeyContrastPoints))
	}
	if decoded[1].Subject.NameIfPresent != nil {
		t.Error("expected null name to stay nil through parquet")
	}
}

func TestDocumentLoaders_File(t *testing.T) {
	ctx := context.Background()

	corpus := NewDocumentCorpusLoader(NewFileSource(sampleCorpusPath), "")
	works, err := corpus.LoadCorpus(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(works) != 6 {
		t.Errorf("expected 6 sample works, got %d", len(works))
	}
	if corpus.Describe() != "file:"+sampleCorpusPath {
		t.Errorf("unexpected description %q", corpus.Describe())
	}

	exhibition := NewDocumentExhibitionLoader(NewFileSource(sampleExhibitionPath))
	doc, err := exhibition.LoadExhibition(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Exhibition.Title != "The Machine's Eye" || len(doc.Sections) != 2 {
		t.Errorf("unexpected exhibition: %q with %d sections", doc.Exhibition.Title, len(doc.Sections))
	}

	_, err = NewDocumentCorpusLoader(NewFileSource(filepath.Join(t.TempDir(), "missing.json")), "").LoadCorpus(ctx)
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestHTTPSource(t *testing.T) {
	body, err := os.ReadFile(sampleExhibitionPath)
	if err != nil {
		t.Fatalf("failed to read sample: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/gallery.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
	defer server.Close()

	src := NewHTTPSource(server.URL+"/data/gallery.json", 0, 0)
	if src.Name() != "/data/gallery.json" {
		t.Errorf("expected URL path as name, got %q", src.Name())
	}

	doc, err := NewDocumentExhibitionLoader(src).LoadExhibition(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Mantlepiece.Asian.ObjectID != 56197 {
		t.Errorf("expected mantlepiece asian 56197, got %d", doc.Mantlepiece.Asian.ObjectID)
	}

	missing := NewHTTPSource(server.URL+"/nope.json", 0, 0)
	if _, err := missing.Open(context.Background()); err == nil {
		t.Error("expected error for 404")
	}
}

func TestObjectSource(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewLocalStorage(t.TempDir(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body, err := os.ReadFile(sampleCorpusPath)
	if err != nil {
		t.Fatalf("failed to read sample: %v", err)
	}
	if err := store.Upload(ctx, "data/vlm_corpus.json", bytes.NewReader(body), int64(len(body)), "application/json"); err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	loader, err := NewCorpusLoader(config.DocumentConfig{Source: config.SourceStorage, Key: "data/vlm_corpus.json"}, Dependencies{Storage: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	works, err := loader.LoadCorpus(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(works) != 6 {
		t.Errorf("expected 6 works, got %d", len(works))
	}
}

func TestDatabaseCorpusLoader(t *testing.T) {
	ctx := context.Background()
	db, err := repository.InitDB(&config.DatabaseConfig{
		Driver:      "sqlite",
		Path:        filepath.Join(t.TempDir(), "gallery.db"),
		AutoMigrate: true,
	})
	if err != nil {
		t.Fatalf("failed to init db: %v", err)
	}
	repo := repository.NewWorkRepository(db)

	works, err := DecodeCorpus(mustOpen(t, sampleCorpusPath), FormatJSON)
	if err != nil {
		t.Fatalf("failed to decode sample: %v", err)
	}
	if err := repo.UpsertAll(ctx, works); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	loader, err := NewCorpusLoader(config.DocumentConfig{Source: config.SourceDatabase}, Dependencies{Works: repo})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, err := loader.LoadCorpus(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded) != len(works) || loaded[0].ObjectID != works[0].ObjectID {
		t.Errorf("expected seeded corpus order to survive, got %d works", len(loaded))
	}
}

func TestNewLoaders_MissingDependencies(t *testing.T) {
	if _, err := NewCorpusLoader(config.DocumentConfig{Source: config.SourceDatabase}, Dependencies{}); err == nil {
		t.Error("expected error for database source without repository")
	}
	if _, err := NewExhibitionLoader(config.DocumentConfig{Source: config.SourceStorage, Key: "k"}, Dependencies{}); err == nil {
		t.Error("expected error for storage source without storage")
	}
	if _, err := NewExhibitionLoader(config.DocumentConfig{Source: "ftp"}, Dependencies{}); err == nil {
		t.Error("expected error for unknown source")
	}
}

func TestDocumentSet_Load(t *testing.T) {
	set := DocumentSet{
		Corpus:     NewDocumentCorpusLoader(NewFileSource(sampleCorpusPath), ""),
		Exhibition: NewDocumentExhibitionLoader(NewFileSource(filepath.Join(t.TempDir(), "missing.json"))),
	}

	if _, _, err := set.Load(context.Background()); err == nil || !strings.Contains(err.Error(), "failed to load exhibition") {
		t.Errorf("expected exhibition load error, got %v", err)
	}
}

func mustOpen(t *testing.T, path string) *os.File {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}
