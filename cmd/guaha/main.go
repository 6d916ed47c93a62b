package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/tjflores/guaha/internal/cli"
	"github.com/tjflores/guaha/internal/lexicon"
	"github.com/tjflores/guaha/internal/progress"
	"github.com/tjflores/guaha/internal/termcolor"
)

// Build-time variables set via -ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	gf, args := parseGlobalFlags(os.Args[1:])

	// --version is handled before app.Run because "--" prefixed args
	// would be treated as unknown commands by the dispatcher.
	for _, a := range args {
		if a == "--version" {
			printVersion()
			os.Exit(0)
		}
	}

	cw := termcolor.NewWriter(os.Stdout, gf.colorMode)

	app := cli.NewApp("guaha", version)
	app.Stderr = os.Stderr

	// lx is declared here and assigned after dispatch determines that the
	// matched command needs it (NeedsLexicon). Closures capture the pointer
	// variable, which is populated before they execute.
	var lx *lexicon.Lexicon

	app.Register(&cli.Command{
		Name:    "search",
		Summary: "Rank dictionary entries against a query",
		Usage:   "guaha search [-n <count>] [--strip] [--ratio] <query>",
		Examples: []string{
			"guaha search guaha",
			"guaha search --strip managuaha",
			"guaha search -n10 --ratio atdao",
		},
		NeedsLexicon: true,
		Run:          func(args []string) int { return runSearch(lx, args, cw) },
	})

	app.Register(&cli.Command{
		Name:         "entry",
		Summary:      "Show one entry by exact headword",
		Usage:        "guaha entry <headword>",
		Examples:     []string{"guaha entry guaha"},
		NeedsLexicon: true,
		Run:          func(args []string) int { return runEntry(lx, args, cw) },
	})

	app.Register(&cli.Command{
		Name:         "complete",
		Summary:      "Suggest headwords for a prefix",
		Usage:        "guaha complete [-n <count>] <prefix>",
		Examples:     []string{"guaha complete gua"},
		NeedsLexicon: true,
		Run:          func(args []string) int { return runComplete(lx, args) },
	})

	app.Register(&cli.Command{
		Name:    "ratio",
		Summary: "Compare two strings with both scorers",
		Usage:   "guaha ratio <a> <b>",
		Examples: []string{
			"guaha ratio abc ac",
			`guaha ratio "hafa adai" "hafa dai"`,
		},
		Run: func(args []string) int { return runRatio(args, cw) },
	})

	app.Register(&cli.Command{
		Name:    "demo",
		Summary: "Run the matcher on its worked examples",
		Usage:   "guaha demo",
		Run:     func([]string) int { return runDemo(cw) },
	})

	app.Register(&cli.Command{
		Name:    "update",
		Summary: "Update to the latest release",
		Usage:   "guaha update [--check]",
		Examples: []string{
			"guaha update",
			"guaha update --check",
		},
		Run: func(args []string) int { return runUpdate(args) },
	})

	app.Register(&cli.Command{
		Name:    "version",
		Summary: "Show version information",
		Usage:   "guaha version",
		Run:     func([]string) int { printVersion(); return 0 },
	})

	// Determine which command will run so we can load the dictionary only
	// when needed.
	if len(args) > 0 {
		cmd := app.Lookup(args[0])
		if cmd != nil && cmd.NeedsLexicon {
			var err error
			lx, err = loadLexicon(gf)
			if err != nil {
				fmt.Fprintf(os.Stderr, "guaha: %v\n", err)
				os.Exit(1)
			}
		}
	}

	os.Exit(app.Run(args, cw))
}

// loadLexicon resolves the dictionary and variants paths from flags and
// environment, then loads them with a spinner on interactive terminals.
func loadLexicon(gf globalFlags) (*lexicon.Lexicon, error) {
	dictPath := gf.dictPath
	if dictPath == "" {
		dictPath = os.Getenv("GUAHA_DICT")
	}
	if dictPath == "" {
		dictPath = defaultDictPath
	}

	variantsPath := gf.variantsPath
	if variantsPath == "" {
		variantsPath = os.Getenv("GUAHA_VARIANTS")
	}
	if variantsPath == "" {
		// A variants file sitting next to the dictionary is picked up
		// automatically; anywhere else it must be named explicitly.
		probe := filepath.Join(filepath.Dir(dictPath), defaultVariantsName)
		if _, err := os.Stat(probe); err == nil {
			variantsPath = probe
		}
	}

	sp := progress.New("Loading dictionary...")
	sp.Start()
	defer sp.Stop()
	return lexicon.Load(dictPath, variantsPath)
}

func printVersion() {
	fmt.Printf("guaha %s\n", version)
	fmt.Printf("  commit:     %s\n", commit)
	fmt.Printf("  built:      %s\n", buildDate)
	fmt.Printf("  go version: %s\n", runtime.Version())
	fmt.Printf("  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
