package tui

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/geostack-labs/fgbscope/internal/fgb"
	"github.com/geostack-labs/fgbscope/internal/geo"
)

// Watcher re-decodes a local file when it changes on disk and feeds the
// result into the running program as a reloadMsg. Reload failures are
// surfaced as a status line, never an exit.
type Watcher struct {
	fsw    *fsnotify.Watcher
	logger *slog.Logger
	done   chan struct{}
}

// WatchFile starts watching path. send is the program's Send method.
// The watch goes on the parent directory, not the file itself: editors
// and GDAL-style writers save by renaming a temp file over the target,
// which would silently kill a watch on the old inode.
func WatchFile(path string, send func(msg any), logger *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{fsw: fsw, logger: logger, done: make(chan struct{})}
	go w.loop(abs, send)
	return w, nil
}

func (w *Watcher) loop(path string, send func(msg any)) {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Base(ev.Name) != filepath.Base(path) {
				continue
			}
			w.logger.Debug("source changed, reloading header", "path", path, "op", ev.Op.String())
			send(reloadHeader(path, w.logger))
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "path", path, "err", err)
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher. Safe to call once.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func reloadHeader(path string, logger *slog.Logger) reloadMsg {
	src, err := fgb.Open(context.Background(), path, fgb.OpenOptions{Logger: logger})
	if err != nil {
		return reloadMsg{err: err}
	}
	defer src.Close()

	hdr, err := fgb.DecodeHeader(src)
	if err != nil {
		return reloadMsg{err: err}
	}
	return reloadMsg{hdr: hdr, ext: geo.ExtentFromHeader(hdr, logger)}
}
