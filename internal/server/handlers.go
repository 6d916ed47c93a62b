package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tjflores/guaha/internal/lexicon"
	"github.com/yuin/goldmark"
)

// extractHeadwordParam validates the request method and extracts the headword
// from the URL path after the given prefix. On failure it writes an HTTP error
// and returns ok=false.
func extractHeadwordParam(w http.ResponseWriter, r *http.Request, prefix string) (string, bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return "", false
	}

	headword := strings.TrimPrefix(r.URL.Path, prefix)
	if headword == "" || headword == r.URL.Path {
		http.Error(w, "Missing headword in path", http.StatusBadRequest)
		return "", false
	}

	if err := validateQuery(headword); err != nil {
		http.Error(w, fmt.Sprintf("Invalid headword: %v", err), http.StatusBadRequest)
		return "", false
	}

	return headword, true
}

// handleLexicon reports stats for the loaded dictionary.
func (s *Server) handleLexicon(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(buildLexiconStats(s.Lexicon())); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// handleSearch ranks headwords against the q parameter. Optional parameters:
// n (result count, default 5) and strip (apply affix stripping to the query).
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "Missing 'q' query parameter", http.StatusBadRequest)
		return
	}
	if err := validateQuery(query); err != nil {
		http.Error(w, fmt.Sprintf("Invalid query: %v", err), http.StatusBadRequest)
		return
	}

	n, err := parseResultCount(r.URL.Query().Get("n"), defaultResults)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid 'n' parameter: %v", err), http.StatusBadRequest)
		return
	}

	strip := false
	if raw := r.URL.Query().Get("strip"); raw != "" {
		strip, err = strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid 'strip' parameter: %q", raw), http.StatusBadRequest)
			return
		}
	}

	matches := s.searchCurrent(query, n, strip)

	response := map[string]any{
		"query":   query,
		"strip":   strip,
		"count":   len(matches),
		"matches": matches,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// searchCurrent runs a search against the live snapshot through the LRU cache.
func (s *Server) searchCurrent(query string, n int, strip bool) []lexicon.Match {
	key := strconv.Itoa(n) + ":" + strconv.FormatBool(strip) + ":" + query
	if cached, ok := s.searchCache.Get(key); ok {
		return cached
	}

	matches := s.Lexicon().SearchWith(query, n, lexicon.SearchOptions{StripAffixes: strip})
	if matches == nil {
		matches = []lexicon.Match{} // JSON array, never null
	}

	s.searchCache.Put(key, matches)
	return matches
}

// handleEntry returns one entry by exact headword, with its variants. With
// ?render=html the definition is additionally rendered from Markdown.
func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	headword, ok := extractHeadwordParam(w, r, "/api/entry/")
	if !ok {
		return
	}

	lx := s.Lexicon()
	value, found := lx.Entry(headword)
	if !found {
		http.Error(w, fmt.Sprintf("Headword not found: %s", headword), http.StatusNotFound)
		return
	}

	response := map[string]any{
		"headword": headword,
		"value":    value,
	}
	if variants := lx.Variants(headword); len(variants) > 0 {
		response["variants"] = variants
	}

	if r.URL.Query().Get("render") == "html" {
		html, err := s.renderDefinition(headword, value)
		if err != nil {
			http.Error(w, "Failed to render definition", http.StatusInternalServerError)
			return
		}
		response["html"] = html
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// renderDefinition converts a definition's display text to HTML, cached per
// headword until the next reload.
func (s *Server) renderDefinition(headword string, value json.RawMessage) (string, error) {
	if cached, ok := s.renderCache.Get(headword); ok {
		return cached, nil
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(definitionText(value)), &buf); err != nil {
		return "", err
	}

	html := buf.String()
	s.renderCache.Put(headword, html)
	return html, nil
}

// definitionText flattens a raw definition value to display text: JSON
// strings are unquoted, anything else keeps its compact JSON form.
func definitionText(value json.RawMessage) string {
	var text string
	if err := json.Unmarshal(value, &text); err == nil {
		return text
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, value); err != nil {
		return string(value)
	}
	return compact.String()
}

// handleComplete suggests headwords for a partial query.
func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "Missing 'q' query parameter", http.StatusBadRequest)
		return
	}
	if err := validateQuery(query); err != nil {
		http.Error(w, fmt.Sprintf("Invalid query: %v", err), http.StatusBadRequest)
		return
	}

	n, err := parseResultCount(r.URL.Query().Get("n"), defaultCompletions)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid 'n' parameter: %v", err), http.StatusBadRequest)
		return
	}

	completions := s.Lexicon().Complete(query, n)
	if completions == nil {
		completions = []string{}
	}

	response := map[string]any{
		"query":       query,
		"completions": completions,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
