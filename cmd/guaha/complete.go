package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tjflores/guaha/internal/lexicon"
)

// runComplete prints bare headwords one per line so the output can feed
// shell completion directly.
func runComplete(lx *lexicon.Lexicon, args []string) int {
	limit := 10
	prefix := ""

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "-n" && i+1 < len(args):
			i++
			v, err := strconv.Atoi(args[i])
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: invalid -n value: %q\n", args[i])
				return 1
			}
			limit = v
		case strings.HasPrefix(args[i], "-n"):
			v, err := strconv.Atoi(args[i][2:])
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: invalid -n value: %q\n", args[i][2:])
				return 1
			}
			limit = v
		case strings.HasPrefix(args[i], "-"):
			fmt.Fprintf(os.Stderr, "error: unknown option: %q\n", args[i])
			return 1
		default:
			prefix = args[i]
		}
	}

	if prefix == "" {
		fmt.Fprintln(os.Stderr, "usage: guaha complete [-n <count>] <prefix>")
		return 1
	}

	for _, headword := range lx.Complete(prefix, limit) {
		fmt.Println(headword)
	}
	return 0
}
