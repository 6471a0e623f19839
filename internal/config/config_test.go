package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsAndFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9090
corpus:
  source: http
  url: https://example.org/vlm_corpus.json
exhibition:
  path: ./fixtures/gallery.json
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.Mode != "debug" {
		t.Errorf("expected default mode debug, got %q", cfg.Server.Mode)
	}
	if cfg.Corpus.Source != SourceHTTP || cfg.Corpus.URL == "" {
		t.Errorf("expected http corpus source, got %+v", cfg.Corpus)
	}
	if cfg.Exhibition.Source != SourceFile || cfg.Exhibition.Path != "./fixtures/gallery.json" {
		t.Errorf("expected file exhibition source, got %+v", cfg.Exhibition)
	}
	if cfg.HTTP.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.HTTP.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		corpus     DocumentConfig
		exhibition DocumentConfig
		wantErr    bool
	}{
		{
			name:       "file sources",
			corpus:     DocumentConfig{Source: SourceFile, Path: "a.json"},
			exhibition: DocumentConfig{Source: SourceFile, Path: "b.json"},
		},
		{
			name:       "database corpus",
			corpus:     DocumentConfig{Source: SourceDatabase},
			exhibition: DocumentConfig{Source: SourceStorage, Key: "gallery.json"},
		},
		{
			name:       "database exhibition rejected",
			corpus:     DocumentConfig{Source: SourceFile, Path: "a.json"},
			exhibition: DocumentConfig{Source: SourceDatabase},
			wantErr:    true,
		},
		{
			name:       "missing url",
			corpus:     DocumentConfig{Source: SourceHTTP},
			exhibition: DocumentConfig{Source: SourceFile, Path: "b.json"},
			wantErr:    true,
		},
		{
			name:       "unknown source",
			corpus:     DocumentConfig{Source: "ftp"},
			exhibition: DocumentConfig{Source: SourceFile, Path: "b.json"},
			wantErr:    true,
		},
		{
			name:       "unknown format",
			corpus:     DocumentConfig{Source: SourceFile, Path: "a.csv", Format: "csv"},
			exhibition: DocumentConfig{Source: SourceFile, Path: "b.json"},
			wantErr:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{Corpus: tc.corpus, Exhibition: tc.exhibition}
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	sqlite := DatabaseConfig{Driver: "sqlite", Path: "./data/gallery.db"}
	if sqlite.DSN() != "./data/gallery.db" {
		t.Errorf("expected sqlite path DSN, got %q", sqlite.DSN())
	}

	pg := DatabaseConfig{Driver: "postgres", Host: "db", Port: 5432, User: "u", Password: "p", DBName: "gallery", SSLMode: "disable"}
	expected := "host=db port=5432 user=u password=p dbname=gallery sslmode=disable"
	if pg.DSN() != expected {
		t.Errorf("expected %q, got %q", expected, pg.DSN())
	}

	my := DatabaseConfig{Driver: "mysql", Host: "db", Port: 3306, User: "u", Password: "p", DBName: "gallery"}
	expected = "u:p@tcp(db:3306)/gallery?charset=utf8mb4&parseTime=True&loc=UTC"
	if my.DSN() != expected {
		t.Errorf("expected %q, got %q", expected, my.DSN())
	}
}
