package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/tjflores/guaha/internal/lexicon"
	"github.com/tjflores/guaha/internal/termcolor"
)

func runEntry(lx *lexicon.Lexicon, args []string, cw *termcolor.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: guaha entry <headword>")
		return 1
	}
	headword := args[0]

	value, ok := lx.Entry(headword)
	if !ok {
		fmt.Fprintf(os.Stderr, "entry %q not found\n", headword)
		// Offer the nearest headwords, the same way the dispatcher hints
		// at mistyped commands.
		var names []string
		for _, m := range lx.Search(headword, 3) {
			if m.Score > 0 {
				names = append(names, m.Headword)
			}
		}
		if len(names) > 0 {
			fmt.Fprintf(os.Stderr, "\n\tDid you mean: %s?\n", strings.Join(names, ", "))
		}
		return 1
	}

	fmt.Printf("%s\n", cw.BoldCyan(headword))
	fmt.Printf("  %s\n", displayValue(value))
	if variants := lx.Variants(headword); len(variants) > 0 {
		fmt.Printf("  %s %s\n", cw.Dim("variants:"), strings.Join(variants, ", "))
	}
	return 0
}
