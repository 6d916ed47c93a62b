package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/tjflores/guaha/internal/termcolor"
)

// Default file locations, matching the dictionary project's layout.
const (
	defaultDictPath     = "./ChamorroDictionary.json"
	defaultVariantsName = "ChamorroVariants.json"
)

type globalFlags struct {
	colorMode    termcolor.ColorMode
	dictPath     string
	variantsPath string
}

// parseGlobalFlags extracts --color, --no-color, --dict and --variants from
// anywhere in args, returning the parsed flags and the remaining (filtered)
// arguments.
func parseGlobalFlags(args []string) (globalFlags, []string) {
	gf := globalFlags{colorMode: termcolor.ColorAuto}
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--no-color" {
			gf.colorMode = termcolor.ColorNever
			continue
		}

		if arg == "--color" && i+1 < len(args) {
			mode, err := termcolor.ParseColorMode(args[i+1])
			if err != nil {
				fmt.Fprintf(os.Stderr, "guaha: %v\n", err)
				os.Exit(1)
			}
			gf.colorMode = mode
			i++ // skip the value
			continue
		}

		if val, ok := strings.CutPrefix(arg, "--color="); ok {
			mode, err := termcolor.ParseColorMode(val)
			if err != nil {
				fmt.Fprintf(os.Stderr, "guaha: %v\n", err)
				os.Exit(1)
			}
			gf.colorMode = mode
			continue
		}

		if arg == "--dict" && i+1 < len(args) {
			gf.dictPath = args[i+1]
			i++
			continue
		}

		if val, ok := strings.CutPrefix(arg, "--dict="); ok {
			gf.dictPath = val
			continue
		}

		if arg == "--variants" && i+1 < len(args) {
			gf.variantsPath = args[i+1]
			i++
			continue
		}

		if val, ok := strings.CutPrefix(arg, "--variants="); ok {
			gf.variantsPath = val
			continue
		}

		remaining = append(remaining, arg)
	}

	return gf, remaining
}
