// Package watcher re-runs the export batch when the models tree changes.
// Events are coalesced through a debounce timer so a burst of saves from the
// authoring tool triggers a single run.
package watcher

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

type Service struct {
	root     string
	debounce time.Duration
	runFn    func()
	log      *slog.Logger
}

func NewService(root string, debounce time.Duration, runFn func(), log *slog.Logger) *Service {
	return &Service{
		root:     root,
		debounce: debounce,
		runFn:    runFn,
		log:      log.With(slog.String("item", "Watcher")),
	}
}

// Start blocks until ctx is canceled. The models root and every directory
// under it are watched; directories created while watching are added on the
// fly.
func (s *Service) Start(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := s.addTree(w, s.root); err != nil {
		return err
	}

	s.log.Info("Watching models root", slog.String("root", s.root))

	// Starts stopped; reset on every relevant event.
	debounceTimer := time.NewTimer(s.debounce)
	if !debounceTimer.Stop() {
		<-debounceTimer.C
	}

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Watcher stopping")

			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			s.handleEvent(w, ev)
			debounceTimer.Reset(s.debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("Watch error", slog.Any("error", err))

		case <-debounceTimer.C:
			s.log.Info("Change detected, running batch")
			s.runFn()
		}
	}
}

func (s *Service) handleEvent(w *fsnotify.Watcher, ev fsnotify.Event) {
	s.log.Debug("FS event", slog.String("op", ev.Op.String()), slog.String("name", ev.Name))

	if ev.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.Add(ev.Name); err != nil {
				s.log.Warn("Cannot watch new dir", slog.String("dir", ev.Name), slog.Any("error", err))
			}
		}
	}
}

func (s *Service) addTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}

		return nil
	})
}
