package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"svfmt/internal/format"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCollectSourceFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.sv", "")
	b := writeFile(t, dir, filepath.Join("sub", "b.svh"), "")
	writeFile(t, dir, "notes.txt", "")
	writeFile(t, dir, "c.v", "")

	files, err := collectSourceFiles(context.Background(), []string{dir})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{a, b}
	if len(files) != len(want) {
		t.Fatalf("got %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("file %d = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestFormatPathsCheck(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "u.sv", "logic[7:0] foo;\n")

	results, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{
		Check:   true,
		NoCache: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !results[0].Changed {
		t.Error("check did not flag an unformatted file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "logic[7:0] foo;\n" {
		t.Error("check mode must not modify files")
	}
}

func TestFormatPathsRewrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "u.sv", "logic[7:0] foo;\n")

	results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{NoCache: true})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Err != nil {
		t.Fatalf("format failed: %v", results[0].Err)
	}
	if !results[0].Changed {
		t.Error("expected a rewrite")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "logic [7:0]" + strings.Repeat(" ", 39) + "foo;\n"
	if string(data) != want {
		t.Errorf("file content %q, want %q", data, want)
	}

	// A second run over formatted output is a no-op.
	results, err = FormatPaths(context.Background(), []string{path}, FormatOptions{NoCache: true})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Changed {
		t.Error("second run must not change anything")
	}
}

func TestFormatPathsStdout(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "u.sv", "logic[7:0] foo;\n")

	results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{
		Stdout:  true,
		NoCache: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results[0].Formatted) == 0 {
		t.Error("stdout mode must return formatted bytes")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "logic[7:0] foo;\n" {
		t.Error("stdout mode must not modify files")
	}
}

func TestFormatPathsFailClosed(t *testing.T) {
	dir := t.TempDir()
	bad := "always_comb begin\n  x = 1;\n"
	path := writeFile(t, dir, "bad.sv", bad)

	results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{NoCache: true})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Err == nil {
		t.Fatal("unbalanced input must fail")
	}
	if !results[0].Bag.HasErrors() {
		t.Error("failure not surfaced as a diagnostic")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != bad {
		t.Error("failed file must keep its original bytes")
	}
}

func TestFormatPathsNoSources(t *testing.T) {
	if _, err := FormatPaths(context.Background(), []string{t.TempDir()}, FormatOptions{NoCache: true}); err == nil {
		t.Error("empty input set must error")
	}
}

func TestFormatPathsParallel(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.sv", "b.sv", "c.sv", "d.sv"} {
		writeFile(t, dir, name, "logic x;\n")
	}

	results, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{
		Jobs:    2,
		Check:   true,
		NoCache: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("%s: %v", r.Path, r.Err)
		}
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cache, err := OpenDiskCache("svfmt-test")
	if err != nil {
		t.Fatal(err)
	}

	key := cacheKey([]byte("logic x;\n"), format.Options{LineLimit: 100, AlignColumn: 50, IndentWidth: 2})
	if _, ok := cache.Lookup(key); ok {
		t.Fatal("unexpected hit on an empty cache")
	}

	cache.Store(key, format.Result{Output: []byte("logic x;\n"), Changed: false})
	payload, ok := cache.Lookup(key)
	if !ok {
		t.Fatal("expected a hit after store")
	}
	if payload.Changed {
		t.Error("payload changed flag corrupted")
	}

	// A different option set must miss.
	other := cacheKey([]byte("logic x;\n"), format.Options{LineLimit: 80, AlignColumn: 40, IndentWidth: 4})
	if other == key {
		t.Fatal("option knobs not folded into the key")
	}
	if _, ok := cache.Lookup(other); ok {
		t.Error("unexpected hit for different options")
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.Lookup(key); ok {
		t.Error("hit after DropAll")
	}
}

func TestNilDiskCache(t *testing.T) {
	var cache *DiskCache
	if _, ok := cache.Lookup(Digest{}); ok {
		t.Error("nil cache must miss")
	}
	cache.Store(Digest{}, format.Result{})
	if err := cache.DropAll(); err != nil {
		t.Error(err)
	}
}

func TestTokenize(t *testing.T) {
	dir := t.TempDir()
	body := "module m;\nendmodule\n"
	path := writeFile(t, dir, "m.sv", body)

	res, err := Tokenize(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}

	var rebuilt strings.Builder
	for _, tok := range res.Tokens {
		rebuilt.WriteString(tok.Text)
	}
	if rebuilt.String() != body {
		t.Errorf("token texts do not reproduce the file: %q", rebuilt.String())
	}
}
