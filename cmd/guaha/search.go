package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tjflores/guaha/internal/lexicon"
	"github.com/tjflores/guaha/internal/match"
	"github.com/tjflores/guaha/internal/termcolor"
)

func runSearch(lx *lexicon.Lexicon, args []string, cw *termcolor.Writer) int {
	n := 5
	strip := false
	ratio := false
	var queryParts []string

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--strip":
			strip = true
		case args[i] == "--ratio":
			ratio = true
		case args[i] == "-n" && i+1 < len(args):
			i++
			v, err := strconv.Atoi(args[i])
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: invalid -n value: %q\n", args[i])
				return 1
			}
			n = v
		case strings.HasPrefix(args[i], "-n"):
			// Handle -n5 style
			v, err := strconv.Atoi(args[i][2:])
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: invalid -n value: %q\n", args[i][2:])
				return 1
			}
			n = v
		case strings.HasPrefix(args[i], "-"):
			fmt.Fprintf(os.Stderr, "error: unknown option: %q\n", args[i])
			return 1
		default:
			queryParts = append(queryParts, args[i])
		}
	}

	if len(queryParts) == 0 {
		fmt.Fprintln(os.Stderr, "usage: guaha search [-n <count>] [--strip] [--ratio] <query>")
		return 1
	}
	query := strings.Join(queryParts, " ")

	matches := lx.SearchWith(query, n, lexicon.SearchOptions{StripAffixes: strip})
	if len(matches) == 0 {
		return 0
	}

	// The ratio column compares the same prepared strings the ranker scored.
	q := match.Normalize(query)
	if strip {
		q = match.StripAffixes(q)
	}

	for i, m := range matches {
		line := fmt.Sprintf("%2d. %s  %s", i+1, cw.Yellow(formatScore(m.Score)), cw.BoldCyan(m.Headword))
		if ratio {
			base := match.Ratio(match.Normalize(m.Headword), q)
			line += "  " + cw.Dim("ratio "+formatScore(base))
		}
		fmt.Println(line)
		fmt.Printf("    %s\n", displayValue(m.Value))
	}

	return 0
}
