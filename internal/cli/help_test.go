package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/tjflores/guaha/internal/termcolor"
)

func TestFormatAppHelp(t *testing.T) {
	app := NewApp("guaha", "2.0.0")
	var buf bytes.Buffer
	app.Stderr = &buf

	app.Register(&Command{Name: "search", Summary: "Search the dictionary", Run: func([]string) int { return 0 }})
	app.Register(&Command{Name: "entry", Summary: "Show a full entry", Run: func([]string) int { return 0 }})

	cw := termcolor.NewWriter(os.Stdout, termcolor.ColorNever)
	FormatAppHelp(app, cw)

	out := buf.String()

	checks := []string{
		"guaha version 2.0.0",
		"Usage:",
		"Commands:",
		"search",
		"Search the dictionary",
		"entry",
		"Show a full entry",
		"Global flags:",
		"--dict",
		"--variants",
		"--color",
		"--no-color",
		"--version",
	}
	for _, s := range checks {
		if !strings.Contains(out, s) {
			t.Errorf("FormatAppHelp output missing %q", s)
		}
	}
}

func TestFormatCommandHelp(t *testing.T) {
	app := NewApp("guaha", "2.0.0")
	var buf bytes.Buffer
	app.Stderr = &buf

	cmd := &Command{
		Name:     "search",
		Summary:  "Search the dictionary",
		Usage:    "guaha search [--strip] [-n <count>] <query>",
		Examples: []string{"guaha search guaha", "guaha search --strip -n10 managuaha"},
		Run:      func([]string) int { return 0 },
	}

	cw := termcolor.NewWriter(os.Stdout, termcolor.ColorNever)
	FormatCommandHelp(app, cmd, cw)

	out := buf.String()

	checks := []string{
		"search",
		"Search the dictionary",
		"Usage:",
		"guaha search [--strip] [-n <count>] <query>",
		"Examples:",
		"guaha search --strip -n10 managuaha",
	}
	for _, s := range checks {
		if !strings.Contains(out, s) {
			t.Errorf("FormatCommandHelp output missing %q", s)
		}
	}
}
