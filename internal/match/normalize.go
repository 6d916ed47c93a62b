package match

import "strings"

// normalizer folds the orthographic variation found across Chamorro
// dictionary sources. Typographic apostrophes stand in for the ASCII glottal
// mark, and stressed vowels appear with and without acute accents. Inputs
// are lower-cased before the table is applied, so only lower-case forms are
// listed; Ñ folds to ñ during lower-casing.
var normalizer = strings.NewReplacer(
	"’", "'", // U+2019 right single quotation mark
	"á", "a",
	"é", "e",
	"í", "i",
	"ó", "o",
	"ú", "u",
)

// Normalize lower-cases s and folds accented vowels and typographic
// apostrophes to canonical forms. Headwords and queries both pass through it
// before scoring so spelling variation between sources does not affect match
// quality. The function is rune-safe and idempotent; å is deliberately left
// alone because dictionary spellings are consistent about it.
func Normalize(s string) string {
	return normalizer.Replace(strings.ToLower(s))
}

// StripAffixes removes a few common Chamorro affixes: everything from the
// first hyphen on is dropped, then the prefixes "ma", "fa", and "um" are
// trimmed in that order, cascading when one strip exposes another. It is an
// optional preprocessing step composed before Normalize by callers that want
// affix-insensitive lookup; the default search path never applies it.
func StripAffixes(s string) string {
	if i := strings.IndexByte(s, '-'); i >= 0 {
		s = s[:i]
	}
	for _, prefix := range []string{"ma", "fa", "um"} {
		s = strings.TrimPrefix(s, prefix)
	}
	return s
}
