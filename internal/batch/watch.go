package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long a file must stay quiet after its last write
// before it is processed. Copies into the watched directory arrive as a
// burst of write events; processing too early reads a partial file.
const settleDelay = 500 * time.Millisecond

// Watch processes PDFs as they appear in the input directory, until the
// context is canceled. Existing files are processed first.
func (r *Runner) Watch(ctx context.Context) error {
	if _, err := r.Run(ctx); err != nil && err != context.Canceled {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(r.config.InputDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", r.config.InputDir, err)
	}
	r.logger.Info("watching for documents", "dir", r.config.InputDir)

	var (
		mu      sync.Mutex
		pending = make(map[string]*time.Timer)
	)
	defer func() {
		mu.Lock()
		for _, t := range pending {
			t.Stop()
		}
		mu.Unlock()
	}()

	schedule := func(path string) {
		mu.Lock()
		defer mu.Unlock()

		if t, ok := pending[path]; ok {
			t.Reset(settleDelay)
			return
		}
		pending[path] = time.AfterFunc(settleDelay, func() {
			mu.Lock()
			delete(pending, path)
			mu.Unlock()

			if ctx.Err() != nil {
				return
			}
			if err := r.Process(path); err != nil {
				r.logger.Error("failed to process document",
					"file", filepath.Base(path), "error", err)
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".pdf") {
				continue
			}
			schedule(event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Error("watcher error", "error", err)
		}
	}
}
