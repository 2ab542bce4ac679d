package cmd

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/spf13/pflag"

	"github.com/aberges/pvaliases/internal/config"
	"github.com/aberges/pvaliases/internal/inventory"
	"github.com/aberges/pvaliases/internal/render"
)

// Grep prints the raw inventory lines matching a pattern, with the
// match highlighted. Lines are prefixed with their source file when the
// result set spans more than one inventory.
func Grep(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("grep", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: pvaliases grep <pattern> <hutch>")
	}
	patt, hutch := fs.Arg(0), fs.Arg(1)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	m := inventory.NewMatcher(cfg)
	m.Log = stderr
	lines, err := m.Search(hutch, patt)
	if errors.Is(err, inventory.ErrNoMatches) {
		render.Warn(stdout, fmt.Sprintf("No results found for %q in %s", patt, hutch))
		return nil
	}
	if err != nil {
		return err
	}

	re, err := regexp.Compile(patt)
	if err != nil {
		return fmt.Errorf("compiling pattern %q: %w", patt, err)
	}

	files := map[string]bool{}
	for _, l := range lines {
		files[l.File] = true
	}
	for _, l := range lines {
		text := render.Highlight(l.Text, re)
		if len(files) > 1 {
			fmt.Fprintf(stdout, "%s:%s\n", l.File, text)
		} else {
			fmt.Fprintln(stdout, text)
		}
	}
	return nil
}
