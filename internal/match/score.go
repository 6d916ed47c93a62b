package match

import "unicode/utf8"

// Score rates how well headword s1 matches query s2 on a 0..1 scale.
//
// Shared letters raise the score while the combined string lengths and the
// span those letters occupy in s1 lower it, so a headword holding the
// query's letters close together outranks one that spreads them out.
// Identical strings score exactly 1; strings sharing no letters score 0.
// Lengths are rune counts, keeping accented vowels and glottal marks single
// units. The window term makes Score asymmetric: the first argument is the
// side being searched.
func Score(s1, s2 string) float64 {
	length, window := LCSWindow(s1, s2)
	if length == 0 {
		return 0
	}
	total := utf8.RuneCountInString(s1) + utf8.RuneCountInString(s2) + window
	return 3 * float64(length) / float64(total)
}
