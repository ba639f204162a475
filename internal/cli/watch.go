package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	errs "github.com/matzehuels/podgraph/pkg/errors"
)

// watchDebounce is how long to wait after the last event before rebuilding.
// Editors and pod install often write a file in several steps.
const watchDebounce = 100 * time.Millisecond

// fileHash computes the XXHash of a file's content.
func fileHash(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

// watch calls build once, then again each time the content of path changes,
// until ctx is cancelled. A failed build is logged and watching continues.
func watch(ctx context.Context, path string, logger *log.Logger, build func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "create watcher")
	}
	defer watcher.Close()

	// Watch the directory, since the file may be replaced by a rename.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "watch %s", path)
	}

	var (
		last uint64
		seen bool
	)
	rebuild := func() {
		sum, err := fileHash(target)
		if err != nil {
			logger.Warn("cannot read lock file", "path", path, "err", err)
			return
		}
		if seen && sum == last {
			logger.Debug("lock file unchanged", "path", path)
			return
		}
		last, seen = sum, true
		if err := build(); err != nil {
			logger.Error("build failed", "err", errs.UserMessage(err))
		}
	}

	rebuild()
	logger.Info("watching for changes", "path", path)

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				timer.Reset(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)
		case <-timer.C:
			rebuild()
		}
	}
}
