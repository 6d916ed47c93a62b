// Package lexicon loads dictionary files and ranks their headwords against
// search queries.
package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tjflores/guaha/internal/match"
)

// Lexicon is an immutable snapshot of a dictionary: headwords mapped to
// opaque definition values, plus optional variant spellings per headword.
// All lookup structures are built once during construction, so a Lexicon is
// safe for concurrent use without locking.
type Lexicon struct {
	name         string
	path         string
	variantsPath string
	loadedAt     time.Time

	entries  map[string]json.RawMessage
	variants map[string][]string

	// keys holds every headword in sorted order; normalized is the parallel
	// slice of pre-normalized forms consumed by Search and Complete.
	keys       []string
	normalized []string
}

// NewEmpty returns a Lexicon with no entries. Used as the "old" state when
// computing the initial delta.
func NewEmpty(name string) *Lexicon {
	return FromEntries(name, nil)
}

// FromEntries constructs a Lexicon directly from an entry map, bypassing the
// filesystem. The map is retained; callers must not modify it afterwards.
func FromEntries(name string, entries map[string]json.RawMessage) *Lexicon {
	if entries == nil {
		entries = make(map[string]json.RawMessage)
	}

	lx := &Lexicon{
		name:     name,
		loadedAt: time.Now(),
		entries:  entries,
		variants: make(map[string][]string),
	}
	lx.buildIndex()
	return lx
}

// Load reads a dictionary file (a JSON object mapping headwords to definition
// values) and an optional variants file (a JSON object mapping headwords to
// alternate spellings). Pass variantsPath == "" when there is no variants
// file. An empty dictionary object is valid.
func Load(path, variantsPath string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary %s: %w", path, err)
	}
	if entries == nil {
		entries = make(map[string]json.RawMessage)
	}

	lx := &Lexicon{
		name:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		path:     path,
		loadedAt: time.Now(),
		entries:  entries,
		variants: make(map[string][]string),
	}

	if variantsPath != "" {
		vdata, err := os.ReadFile(variantsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read variants: %w", err)
		}
		if err := json.Unmarshal(vdata, &lx.variants); err != nil {
			return nil, fmt.Errorf("failed to parse variants %s: %w", variantsPath, err)
		}
		lx.variantsPath = variantsPath
	}

	lx.buildIndex()
	return lx, nil
}

// buildIndex computes the sorted key slice and its parallel normalized forms.
func (lx *Lexicon) buildIndex() {
	lx.keys = make([]string, 0, len(lx.entries))
	for key := range lx.entries {
		lx.keys = append(lx.keys, key)
	}
	sort.Strings(lx.keys)

	lx.normalized = make([]string, len(lx.keys))
	for i, key := range lx.keys {
		lx.normalized[i] = match.Normalize(key)
	}
}

// Name returns the lexicon name, derived from the dictionary file's base name.
func (lx *Lexicon) Name() string { return lx.name }

// Path returns the dictionary file path, or "" for in-memory lexicons.
func (lx *Lexicon) Path() string { return lx.path }

// VariantsPath returns the variants file path, or "" when none was loaded.
func (lx *Lexicon) VariantsPath() string { return lx.variantsPath }

// LoadedAt returns the time the snapshot was constructed.
func (lx *Lexicon) LoadedAt() time.Time { return lx.loadedAt }

// Len returns the number of entries.
func (lx *Lexicon) Len() int { return len(lx.keys) }

// Keys returns every headword in sorted order. The returned slice is built
// once during construction and must not be modified.
func (lx *Lexicon) Keys() []string { return lx.keys }

// Entry returns the definition value for an exact headword.
func (lx *Lexicon) Entry(headword string) (json.RawMessage, bool) {
	value, ok := lx.entries[headword]
	return value, ok
}

// Variants returns the alternate spellings recorded for a headword, or nil.
// Variants are informational only; they are never scored by Search.
func (lx *Lexicon) Variants(headword string) []string {
	return lx.variants[headword]
}

// VariantCount returns the total number of alternate spellings across all
// headwords.
func (lx *Lexicon) VariantCount() int {
	total := 0
	for _, list := range lx.variants {
		total += len(list)
	}
	return total
}
