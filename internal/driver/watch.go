package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reformats source files as they change under the given directories.
// Every completed reformat (including failures) is delivered to notify.
// The loop runs until the context is canceled or the watcher breaks.
func Watch(ctx context.Context, dirs []string, opts FormatOptions, notify func(FormatResult)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	for _, dir := range dirs {
		if err := watchTree(watcher, dir); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op.Has(fsnotify.Create) {
				// New subdirectories need their own watch.
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if err := watchTree(watcher, ev.Name); err != nil {
						return err
					}
					continue
				}
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if !isSourceFile(ev.Name) {
				continue
			}
			notify(formatOne(ev.Name, opts, nil))

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return werr
		}
	}
}

// watchTree registers dir and all of its subdirectories.
func watchTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
