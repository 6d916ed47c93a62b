package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/tjflores/guaha/internal/match"
	"github.com/tjflores/guaha/internal/termcolor"
)

func runRatio(args []string, cw *termcolor.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: guaha ratio <a> <b>")
		return 1
	}

	a := match.Normalize(args[0])
	b := match.Normalize(args[1])

	length, window := match.LCSWindow(a, b)
	fmt.Printf("%s vs %s\n", cw.BoldCyan(args[0]), cw.BoldCyan(args[1]))
	fmt.Printf("  lcs length %d, window %d\n", length, window)
	fmt.Printf("  spread score  %s\n", cw.Yellow(formatScore(match.Score(a, b))))
	fmt.Printf("  lcs ratio     %s\n", cw.Yellow(formatScore(match.Ratio(a, b))))

	// Multi-word arguments also get the best single token pairing.
	ta, tb := strings.Fields(a), strings.Fields(b)
	if len(ta) > 1 || len(tb) > 1 {
		fmt.Printf("  best pair     %s\n", cw.Yellow(formatScore(match.BestRatio(ta, tb))))
	}

	return 0
}
