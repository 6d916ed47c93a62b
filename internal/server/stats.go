package server

import (
	"os"
	"path/filepath"
	"time"

	"github.com/tjflores/guaha/internal/lexicon"
)

// LexiconStats summarizes the currently loaded dictionary. Source carries
// the file's base name only; absolute server paths must not leak to
// unauthenticated clients.
type LexiconStats struct {
	Name      string    `json:"name"`
	Entries   int       `json:"entries"`
	Variants  int       `json:"variants"`
	Source    string    `json:"source,omitempty"`
	SizeBytes int64     `json:"sizeBytes,omitempty"`
	LoadedAt  time.Time `json:"loadedAt"`
}

// buildLexiconStats assembles the stats for a snapshot. The on-disk size is
// best effort: in-memory lexicons have no source file, and an editor may be
// rewriting the file while we stat it.
func buildLexiconStats(lx *lexicon.Lexicon) *LexiconStats {
	stats := &LexiconStats{
		Name:     lx.Name(),
		Entries:  lx.Len(),
		Variants: lx.VariantCount(),
		LoadedAt: lx.LoadedAt(),
	}

	if path := lx.Path(); path != "" {
		stats.Source = filepath.Base(path)
		if info, err := os.Stat(path); err == nil {
			stats.SizeBytes = info.Size()
		}
	}

	return stats
}
