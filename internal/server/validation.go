package server

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

const (
	// maxQueryRunes bounds user-supplied search text. Headwords are short,
	// and the match grid grows with the product of query and headword length.
	maxQueryRunes = 256

	// maxResults caps the n parameter for HTTP and WebSocket searches.
	maxResults = 100

	defaultResults     = 5
	defaultCompletions = 10
)

// validateQuery ensures query text is safe to score against the lexicon.
// It rejects queries that are:
// - Empty
// - Longer than maxQueryRunes
// - Carrying control characters (including null bytes and newlines)
func validateQuery(query string) error {
	if query == "" {
		return fmt.Errorf("query is empty")
	}

	if utf8.RuneCountInString(query) > maxQueryRunes {
		return fmt.Errorf("query exceeds %d characters", maxQueryRunes)
	}

	for _, r := range query {
		if unicode.IsControl(r) {
			return fmt.Errorf("query contains control characters")
		}
	}

	return nil
}

// parseResultCount parses an n query parameter. An empty value falls back to
// def; non-numeric or out-of-range values are an error.
func parseResultCount(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if n < 1 || n > maxResults {
		return 0, fmt.Errorf("out of range [1, %d]: %d", maxResults, n)
	}

	return n, nil
}

// clampResultCount bounds n for WebSocket frames, where a malformed value
// should degrade to the default rather than fail the connection.
func clampResultCount(n int) int {
	if n < 1 {
		return defaultResults
	}
	if n > maxResults {
		return maxResults
	}
	return n
}
