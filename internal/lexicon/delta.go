package lexicon

import "bytes"

// Delta describes how one lexicon snapshot differs from another. Slices are
// always non-nil so the JSON form carries arrays, never null.
type Delta struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
	Changed []string `json:"changed"`
}

// IsEmpty reports whether the delta contains no changes.
func (d *Delta) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// Diff computes a Delta treating lx as the new state and old as the previous
// state. A headword counts as changed when its definition bytes or its
// variant list differ. All result lists come out in sorted order.
func (lx *Lexicon) Diff(old *Lexicon) *Delta {
	delta := &Delta{
		Added:   []string{},
		Removed: []string{},
		Changed: []string{},
	}

	for _, key := range lx.keys {
		oldValue, found := old.entries[key]
		if !found {
			delta.Added = append(delta.Added, key)
			continue
		}
		if !bytes.Equal(oldValue, lx.entries[key]) || !variantsEqual(old.variants[key], lx.variants[key]) {
			delta.Changed = append(delta.Changed, key)
		}
	}
	for _, key := range old.keys {
		if _, found := lx.entries[key]; !found {
			delta.Removed = append(delta.Removed, key)
		}
	}

	return delta
}

func variantsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
