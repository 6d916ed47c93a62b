// Package cli provides a lightweight CLI framework with colored help,
// subcommand dispatch, and "did you mean?" suggestions.
package cli

import "github.com/tjflores/guaha/internal/match"

// suggestFloor is the minimum similarity for a candidate to be offered.
// Anything weaker reads as a non sequitur next to the error message.
const suggestFloor = 0.5

// Suggest returns the closest matching candidate for input, or "" if no
// candidate scores at least suggestFloor. Candidates are rated with the same
// matcher that ranks dictionary headwords; on ties the earliest candidate
// is kept.
func Suggest(input string, candidates []string) string {
	if input == "" {
		return ""
	}

	best := ""
	bestScore := 0.0

	for _, c := range candidates {
		if s := match.Score(c, input); s >= suggestFloor && s > bestScore {
			bestScore = s
			best = c
		}
	}

	return best
}
