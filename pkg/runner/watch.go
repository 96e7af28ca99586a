package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/PBL6-cnpm/cinecheck/pkg/checks"
)

// debounce collapses the burst of events an editor emits for one save.
const debounce = 500 * time.Millisecond

// Watch blocks and reruns fn whenever one of the given files changes, until
// the context is canceled. Parent directories are watched instead of the
// files themselves: spreadsheet editors save by replacing the file, which
// drops a direct file watch.
func Watch(ctx context.Context, paths []string, log checks.Printer, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	watched := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", p, err)
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	if log != nil {
		log.Print("watching %d file(s) for changes", len(watched))
	}

	var timer *time.Timer
	var timerC <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				timer.Reset(debounce)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if log != nil {
				log.Print("watch error: %v", err)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			fn()
		}
	}
}
