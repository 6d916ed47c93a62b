package lexicon

import (
	"encoding/json"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tjflores/guaha/internal/match"
)

// Match is a single ranked search result. Value passes through exactly as it
// appeared in the dictionary file.
type Match struct {
	Headword string          `json:"headword"`
	Value    json.RawMessage `json:"value"`
	Score    float64         `json:"score"`
}

// SearchOptions adjusts how a query is prepared before scoring.
type SearchOptions struct {
	// StripAffixes cuts a hyphenated suffix and the common verbal prefixes
	// from the query before scoring, so an inflected form can still reach
	// its stem headword.
	StripAffixes bool
}

// Search returns the n best-scoring entries for query with default options.
func (lx *Lexicon) Search(query string, n int) []Match {
	return lx.SearchWith(query, n, SearchOptions{})
}

// SearchWith scores every headword against the query and returns the top n
// in descending score order. n <= 0 yields no results rather than an error;
// n beyond the entry count ranks the whole lexicon. Equal scores order by
// normalized form, then original headword, so results are deterministic.
func (lx *Lexicon) SearchWith(query string, n int, opts SearchOptions) []Match {
	if n <= 0 || len(lx.keys) == 0 {
		return nil
	}

	q := match.Normalize(query)
	if opts.StripAffixes {
		q = match.StripAffixes(q)
	}

	scores := lx.scoreAll(q)

	order := make([]int, len(lx.keys))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if scores[i] != scores[j] {
			return scores[i] > scores[j]
		}
		if lx.normalized[i] != lx.normalized[j] {
			return lx.normalized[i] < lx.normalized[j]
		}
		return lx.keys[i] < lx.keys[j]
	})

	if n > len(order) {
		n = len(order)
	}
	matches := make([]Match, n)
	for rank, idx := range order[:n] {
		key := lx.keys[idx]
		matches[rank] = Match{Headword: key, Value: lx.entries[key], Score: scores[idx]}
	}
	return matches
}

// scoreAll scores every headword against the normalized query. The headword
// is always the first scoring argument: the match window is measured inside
// the headword, not the query. Entries are independent, so the work is split
// into contiguous chunks across the available CPUs; each worker writes only
// its own index range, keeping the output identical to a sequential pass.
func (lx *Lexicon) scoreAll(query string) []float64 {
	scores := make([]float64, len(lx.keys))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(lx.keys) {
		workers = len(lx.keys)
	}
	chunk := (len(lx.keys) + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(lx.keys); start += chunk {
		end := min(start+chunk, len(lx.keys))
		g.Go(func() error {
			for i := start; i < end; i++ {
				scores[i] = match.Score(lx.normalized[i], query)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return an error

	return scores
}
