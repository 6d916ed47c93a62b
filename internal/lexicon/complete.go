package lexicon

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/tjflores/guaha/internal/match"
)

// Complete returns up to limit headwords whose normalized forms contain the
// normalized prefix as an in-order character subsequence, ranked by edit
// distance. It is the cheap path for interactive input completion; full
// window scoring stays in Search.
func (lx *Lexicon) Complete(prefix string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	q := match.Normalize(prefix)
	if q == "" {
		return nil
	}

	ranks := fuzzy.RankFind(q, lx.normalized)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].Target < ranks[j].Target
	})

	if limit > len(ranks) {
		limit = len(ranks)
	}
	result := make([]string, limit)
	for i, r := range ranks[:limit] {
		result[i] = lx.keys[r.OriginalIndex]
	}
	return result
}
