// Package watch provides a drop-directory watcher: resumes copied into
// the watched directory trigger the same upload pipeline as a manual
// file prompt, standing in for the browser client's drag-and-drop zone.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/parassrivastav/traqcheck-cli/internal/logger"
)

// quiesceWindow is how long a file must go without writes before it is
// considered fully copied and emitted.
const quiesceWindow = 400 * time.Millisecond

// DropWatcher emits the path of each resume file that appears in the
// watched directory. Only .pdf and .docx files pass the boundary filter;
// everything else is ignored without feedback, matching the dropzone's
// accept list.
type DropWatcher struct {
	dir     string
	watcher *fsnotify.Watcher
	events  chan string
}

// NewDropWatcher creates a watcher for dir. The directory must exist.
func NewDropWatcher(dir string) (*DropWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return &DropWatcher{
		dir:     dir,
		watcher: w,
		events:  make(chan string, 8),
	}, nil
}

// Start consumes filesystem events until ctx is cancelled or the watcher
// is closed. It is meant to run on its own goroutine. A file is emitted
// only after its writes quiesce, so a resume still being copied in is
// not uploaded mid-transfer.
func (d *DropWatcher) Start(ctx context.Context) {
	defer close(d.events)
	pending := map[string]time.Time{}
	ticker := time.NewTicker(quiesceWindow / 4)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-d.watcher.Events:
			if !ok {
				return
			}
			if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Write) {
				continue
			}
			if !allowedResumeExt(ev.Name) {
				continue
			}
			// Each write restarts the quiesce window.
			pending[ev.Name] = time.Now()
		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) < quiesceWindow {
					continue
				}
				delete(pending, path)
				logger.Debug("drop watcher: new resume %s", path)
				select {
				case d.events <- path:
				case <-ctx.Done():
					return
				}
			}
		case err, ok := <-d.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("drop watcher: %v", err)
		}
	}
}

// Events returns the channel of dropped resume paths. Closed when Start
// returns.
func (d *DropWatcher) Events() <-chan string {
	return d.events
}

// Dir returns the watched directory.
func (d *DropWatcher) Dir() string {
	return d.dir
}

// Close stops the underlying filesystem watcher.
func (d *DropWatcher) Close() error {
	return d.watcher.Close()
}

// allowedResumeExt mirrors the upload boundary's accept list.
func allowedResumeExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".docx":
		return true
	default:
		return false
	}
}
