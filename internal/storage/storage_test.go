package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/timmy/machines-eye/internal/config"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir(), "https://gallery.example.org/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := "corpus bytes"
	if err := store.Upload(ctx, "/data/vlm_corpus.json", strings.NewReader(body), int64(len(body)), "application/json"); err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	exists, err := store.Exists(ctx, "data/vlm_corpus.json")
	if err != nil || !exists {
		t.Fatalf("expected object to exist, got %v (%v)", exists, err)
	}

	rc, err := store.Download(ctx, "data/vlm_corpus.json")
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	if string(got) != body {
		t.Errorf("expected %q, got %q", body, string(got))
	}

	missing, err := store.Exists(ctx, "gallery/eastern/none.jpg")
	if err != nil || missing {
		t.Errorf("expected missing object, got %v (%v)", missing, err)
	}

	if _, err := store.Exists(ctx, "../../etc/passwd"); err == nil {
		t.Error("expected error for key escaping the root")
	}
}

func TestResolveImageURL(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "https://cdn.example.org")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"site relative", "/gallery/eastern/56197_Shomei_Tomatsu.jpg", "https://cdn.example.org/gallery/eastern/56197_Shomei_Tomatsu.jpg"},
		{"bare key", "gallery/western/1.jpg", "https://cdn.example.org/gallery/western/1.jpg"},
		{"absolute url", "https://other.example.org/a.jpg", "https://other.example.org/a.jpg"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveImageURL(store, tc.path); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}

	relative, _ := NewLocalStorage(t.TempDir(), "")
	if got := ResolveImageURL(relative, "/gallery/a.jpg"); got != "/gallery/a.jpg" {
		t.Errorf("expected site-relative URL, got %q", got)
	}
}

func TestNewStorage_S3URLs(t *testing.T) {
	store, err := NewStorage(&config.StorageConfig{
		Type:      "s3compatible",
		Endpoint:  "https://minio.local:9000/",
		AccessKey: "key",
		SecretKey: "secret",
		UseSSL:    true,
		Bucket:    "machines-eye",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := store.GetURL("/gallery/a.jpg"); got != "https://minio.local:9000/machines-eye/gallery/a.jpg" {
		t.Errorf("unexpected path-style URL: %q", got)
	}
}

func TestDetectStorageType(t *testing.T) {
	tests := map[string]StorageType{
		"abc.r2.cloudflarestorage.com": StorageTypeR2,
		"s3.us-east-1.amazonaws.com":   StorageTypeS3,
		"localhost:9000":               StorageTypeS3Compatible,
	}
	for endpoint, want := range tests {
		if got := detectStorageType(endpoint); got != want {
			t.Errorf("detectStorageType(%q): expected %s, got %s", endpoint, want, got)
		}
	}
}
