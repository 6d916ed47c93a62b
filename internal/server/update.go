package server

import (
	"time"
)

// reloadLexicon fetches a fresh snapshot, swaps it in, and broadcasts the
// change set to clients.
func (s *Server) reloadLexicon() {
	s.logger.Debug("Reloading lexicon")

	oldLex := s.Lexicon()

	newLex, err := s.reloadFn()
	if err != nil {
		s.logger.Error("Failed to reload lexicon", "err", err)
		return
	}
	if newLex == oldLex {
		s.logger.Debug("Lexicon has no source to reload from")
		return
	}

	delta := newLex.Diff(oldLex)

	s.lexMu.Lock()
	s.lex = newLex
	s.lexMu.Unlock()

	if delta.IsEmpty() {
		s.logger.Debug("No changes detected after lexicon reload")
		return
	}

	// Cached results were computed against the old snapshot.
	s.searchCache.Clear()
	s.renderCache.Clear()

	s.logger.Info("Lexicon reloaded",
		"added", len(delta.Added),
		"removed", len(delta.Removed),
		"changed", len(delta.Changed),
	)

	s.broadcastUpdate(UpdateMessage{
		Type:  "update",
		Stats: buildLexiconStats(newLex),
		Delta: delta,
	})
}

// startReloadTicker launches a goroutine that reloads the lexicon on a fixed
// interval, catching edits the file watcher cannot see.
func (s *Server) startReloadTicker() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.reloadInterval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.reloadLexicon()
			}
		}
	}()
}
