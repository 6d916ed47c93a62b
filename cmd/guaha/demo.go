package main

import (
	"fmt"

	"github.com/tjflores/guaha/internal/match"
	"github.com/tjflores/guaha/internal/termcolor"
)

// demoPairs illustrate how the windowed LCS reacts as the matched letters
// spread out, repeat, or interleave.
var demoPairs = [][2]string{
	{"abc", "ac"},
	{"abbc", "ac"},
	{"acabc", "ac"},
	{"abcac", "ac"},
	{"abacbc", "ac"},
	{"adbc", "abc"},
}

func runDemo(cw *termcolor.Writer) int {
	fmt.Println("Windowed LCS on its worked examples:")
	fmt.Println()
	for _, pair := range demoPairs {
		s1, s2 := pair[0], pair[1]
		length, window := match.LCSWindow(s1, s2)
		score := match.Score(s1, s2)
		fmt.Printf("  %s vs %s  lcs %d  window %d  score %s\n",
			cw.BoldCyan(fmt.Sprintf("%-8s", "'"+s1+"'")),
			cw.Cyan(fmt.Sprintf("%-5s", "'"+s2+"'")),
			length, window, cw.Yellow(formatScore(score)))
	}
	return 0
}
