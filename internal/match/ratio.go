package match

import (
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Ratio returns the classic sequence similarity 2·L/(|a|+|b|), where L is
// the longest-common-subsequence length. It carries no positional penalty,
// which makes it a useful baseline for judging how much Score's window term
// changes a ranking. Both strings empty yields 0.
func Ratio(a, b string) float64 {
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	if la+lb == 0 {
		return 0
	}
	return 2 * float64(edlib.LCS(a, b)) / float64(la+lb)
}

// BestRatio returns the highest Ratio over every pairing of the two token
// lists. Either list empty yields 0.
func BestRatio(list1, list2 []string) float64 {
	best := 0.0
	for _, a := range list1 {
		for _, b := range list2 {
			if r := Ratio(a, b); r > best {
				best = r
			}
		}
	}
	return best
}
