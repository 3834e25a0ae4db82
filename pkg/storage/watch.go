package storage

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounceInterval is the delay after a filesystem event before the
// change is reported. Atomic writes produce a temp-file create followed by a
// rename; debouncing collapses that pair into a single change.
const watchDebounceInterval = 100 * time.Millisecond

// Watch reports paths (relative to the store root) whose contents changed on
// disk, including changes made by other processes. The returned channel is
// closed when ctx is cancelled. Consumers are expected to re-read the named
// collection rather than interpret the change.
func (s *LocalStorage) Watch(ctx context.Context) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(s.basePath); err != nil {
		watcher.Close()
		return nil, err
	}

	out := make(chan string, 16)
	go func() {
		defer close(out)
		defer watcher.Close()

		pending := map[string]struct{}{}
		var timer *time.Timer
		var timerC <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				name := filepath.Base(event.Name)
				if strings.HasSuffix(name, ".tmp") {
					continue
				}
				rel, err := filepath.Rel(s.basePath, event.Name)
				if err != nil {
					continue
				}
				pending[rel] = struct{}{}
				if timer == nil {
					timer = time.NewTimer(watchDebounceInterval)
				} else {
					timer.Reset(watchDebounceInterval)
				}
				timerC = timer.C
			case <-timerC:
				for rel := range pending {
					select {
					case out <- rel:
					default:
						// consumer is behind; it will re-read anyway
					}
				}
				pending = map[string]struct{}{}
				timerC = nil
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("storage watcher error", "error", err)
			}
		}
	}()
	return out, nil
}
