package lexicon

import (
	"reflect"
	"testing"
)

func TestComplete(t *testing.T) {
	lx := testLexicon(t, map[string]string{
		"guaha":     "exists",
		"guagua'":   "basket",
		"gualåffon": "full moon",
		"mames":     "sweet",
	})

	tests := []struct {
		name   string
		prefix string
		limit  int
		want   []string
	}{
		{
			name:   "closest forms first",
			prefix: "gua",
			limit:  2,
			want:   []string{"guaha", "guagua'"},
		},
		{
			name:   "limit beyond matches",
			prefix: "gua",
			limit:  10,
			want:   []string{"guaha", "guagua'", "gualåffon"},
		},
		{
			name:   "prefix is normalized",
			prefix: "GUÁ",
			limit:  1,
			want:   []string{"guaha"},
		},
		{
			name:   "no match",
			prefix: "xyz",
			limit:  5,
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lx.Complete(tt.prefix, tt.limit)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Complete(%q, %d) = %v, want %v", tt.prefix, tt.limit, got, tt.want)
			}
		})
	}
}

func TestComplete_ReturnsOriginalHeadwords(t *testing.T) {
	lx := testLexicon(t, map[string]string{"Guaha": "exists"})

	got := lx.Complete("gua", 1)
	if len(got) != 1 || got[0] != "Guaha" {
		t.Errorf("Complete = %v, want [Guaha]", got)
	}
}

func TestComplete_DegenerateInputs(t *testing.T) {
	lx := testLexicon(t, map[string]string{"guaha": "exists"})

	if got := lx.Complete("gua", 0); got != nil {
		t.Errorf("Complete with limit 0 = %v, want nil", got)
	}
	if got := lx.Complete("gua", -1); got != nil {
		t.Errorf("Complete with negative limit = %v, want nil", got)
	}
	if got := lx.Complete("", 5); got != nil {
		t.Errorf("Complete with empty prefix = %v, want nil", got)
	}
}
