package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestSettingsStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app", "settings.yaml")
	s := NewSettingsStore(path, discardLogger)
	want := Settings{Geometry: "800x600+120+80", Language: "Japanese", LastScreenshotPath: "/tmp/x.png"}
	if err := s.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Fresh instance reads the same file.
	got := NewSettingsStore(path, discardLogger).Load()
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestSettingsStore_MissingAndCorrupt(t *testing.T) {
	dir := t.TempDir()
	if got := NewSettingsStore(filepath.Join(dir, "none.yaml"), discardLogger).Load(); got != (Settings{}) {
		t.Fatalf("missing file should give zero settings, got %+v", got)
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("language: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := NewSettingsStore(bad, discardLogger).Load(); got != (Settings{}) {
		t.Fatalf("corrupt file should give zero settings, got %+v", got)
	}
}

func TestSettingsStore_ClearedPathOmitted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	s := NewSettingsStore(path, discardLogger)
	if err := s.Save(Settings{Language: "English"}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "language: English\n" {
		t.Fatalf("unexpected file contents %q", got)
	}
}
