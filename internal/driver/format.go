// Package driver orchestrates the per-file formatting pipeline over file
// trees: collection, parallel fan-out, result caching, and the watch loop.
package driver

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"svfmt/internal/diag"
	"svfmt/internal/format"
	"svfmt/internal/source"
)

// FormatOptions configures one formatting run.
type FormatOptions struct {
	// Check reports which files would change without touching them.
	Check bool
	// Stdout returns the formatted bytes in the results instead of
	// rewriting files.
	Stdout bool
	// Jobs bounds the number of files formatted concurrently; zero or
	// negative means GOMAXPROCS.
	Jobs int
	// NoCache bypasses the disk cache for this run.
	NoCache bool
	// MaxDiagnostics caps the per-file diagnostic bag.
	MaxDiagnostics int
	// Layout carries the line limit, alignment column, and indent width.
	Layout format.Options
}

// FormatResult captures the outcome for a single file. Errors are per-file;
// a batch never aborts because one input failed.
type FormatResult struct {
	Path      string
	Changed   bool
	Formatted []byte
	// FileSet resolves diagnostic spans; nil when the file never loaded.
	FileSet *source.FileSet
	Bag     *diag.Bag
	Err     error
}

// FormatPaths formats the given files or directories (recursively
// collecting .sv and .svh files). Files fan out over a bounded errgroup;
// each result lands in its own pre-sized slot, so no locking is needed.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := collectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("fmt: no source files found")
	}

	var cache *DiskCache
	if !opts.NoCache {
		// Best effort: a cache that cannot open just means formatting
		// everything from scratch.
		cache, _ = OpenDiskCache("svfmt")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FormatResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = formatOne(path, opts, cache)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// FormatDir formats every source file under dir.
func FormatDir(ctx context.Context, dir string, opts FormatOptions) ([]FormatResult, error) {
	return FormatPaths(ctx, []string{dir}, opts)
}

func formatOne(path string, opts FormatOptions, cache *DiskCache) FormatResult {
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 256
	}
	bag := diag.NewBag(maxDiag)
	res := FormatResult{Path: path, Bag: bag}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOLoadFileError,
			Message:  "failed to load file: " + err.Error(),
		})
		res.Err = err
		return res
	}
	file := fileSet.Get(fileID)
	res.FileSet = fileSet

	key := cacheKey(file.Content, opts.Layout)
	if payload, ok := cache.Lookup(key); ok && !payload.Changed {
		// Already a fixed point under these options.
		res.Formatted = file.Content
		return res
	}

	out, err := format.Source(file, opts.Layout, diag.BagReporter{Bag: bag})
	if err != nil {
		res.Err = err
		return res
	}

	cache.Store(key, out)

	res.Changed = out.Changed
	res.Formatted = out.Output
	if opts.Check || opts.Stdout || !out.Changed {
		return res
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	if writeErr := os.WriteFile(path, out.Output, mode.Perm()); writeErr != nil {
		res.Err = writeErr
	}
	return res
}

func isSourceFile(path string) bool {
	switch filepath.Ext(path) {
	case ".sv", ".svh":
		return true
	}
	return false
}

func collectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if !d.IsDir() && isSourceFile(path) {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		if isSourceFile(p) {
			addFile(p)
		}
	}

	sort.Strings(files)
	return files, nil
}
