package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.LineLimit != 100 || cfg.AlignColumn != 50 || cfg.IndentWidth != 2 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeManifest(t, root, "line_limit = 120\n")

	nested := filepath.Join(root, "rtl", "core")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := Find(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != want {
		t.Errorf("Find(%q) = %q, %v; want %q, true", nested, got, ok, want)
	}
}

func TestFindAbsent(t *testing.T) {
	_, ok, err := Find(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("found a manifest where none exists")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "line_limit = 120\nindent_width = 4\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{LineLimit: 120, AlignColumn: 50, IndentWidth: 4}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "line_limt = 120\n")

	if _, err := Load(path); err == nil {
		t.Error("misspelled key must be rejected")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []Config{
		{LineLimit: 0, AlignColumn: 50, IndentWidth: 2},
		{LineLimit: 100, AlignColumn: -1, IndentWidth: 2},
		{LineLimit: 100, AlignColumn: 100, IndentWidth: 2},
		{LineLimit: 100, AlignColumn: 50, IndentWidth: 0},
	}
	for _, cfg := range cases {
		if err := cfg.Validate(); err == nil {
			t.Errorf("%+v must not validate", cfg)
		}
	}
}

func TestForDir(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "align_column = 40\n")

	cfg, path, err := ForDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Error("manifest path not reported")
	}
	if cfg.AlignColumn != 40 || cfg.LineLimit != 100 {
		t.Errorf("unexpected config: %+v", cfg)
	}

	cfg, path, err = ForDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if path != "" || cfg != Default() {
		t.Errorf("absent manifest must yield defaults, got %+v at %q", cfg, path)
	}
}
