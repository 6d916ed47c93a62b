package server

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceTime = 100 * time.Millisecond

// startWatcher watches the directories holding the dictionary and variants
// files. Directories rather than the files themselves: editors and atomic
// writers replace the file on save, which silently detaches a file-level
// watch.
func (s *Server) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	lx := s.Lexicon()

	watched := map[string]bool{filepath.Base(lx.Path()): true}
	dirs := map[string]bool{filepath.Dir(lx.Path()): true}
	if vp := lx.VariantsPath(); vp != "" {
		watched[filepath.Base(vp)] = true
		dirs[filepath.Dir(vp)] = true
	}

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			//nolint:errcheck // the Add error is the one worth reporting
			watcher.Close()
			return err
		}
	}

	go s.watchLoop(watcher, watched)

	s.logger.Info("Watching dictionary files for changes", "dir", filepath.Dir(lx.Path()))
	return nil
}

func (s *Server) watchLoop(watcher *fsnotify.Watcher, watched map[string]bool) {
	defer s.wg.Done()
	defer func() {
		if err := watcher.Close(); err != nil {
			s.logger.Error("Failed to close watcher", "err", err)
		}
	}()

	var debounceTimer *time.Timer

	for {
		select {
		case <-s.ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if shouldIgnoreEvent(event, watched) {
				continue
			}

			s.logger.Debug("Change detected", "file", filepath.Base(event.Name))

			// Editors fire bursts of events per save; reload once per burst.
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceTime, s.reloadLexicon)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Error("Watcher error", "err", err)
		}
	}
}

// shouldIgnoreEvent filters directory noise down to events that touch the
// dictionary or variants files.
func shouldIgnoreEvent(event fsnotify.Event, watched map[string]bool) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return true
	}
	return !watched[filepath.Base(event.Name)]
}
