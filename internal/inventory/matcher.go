package inventory

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/aberges/pvaliases/internal/cfgjson"
	"github.com/aberges/pvaliases/internal/config"
)

// Wildcard selects every configured hutch at once.
const Wildcard = "all"

var (
	ErrUnknownHutch   = errors.New("unknown hutch")
	ErrMissingPattern = errors.New("no search pattern given")

	// ErrNoMatches is the normal outcome of a search that finds nothing.
	ErrNoMatches = errors.New("no matches")
)

// Line is a raw inventory line together with where it came from. The
// hutch tag travels with the line so wildcard searches never have to
// reconstruct provenance after the fact.
type Line struct {
	File  string
	Hutch string
	Text  string
}

// Matcher searches iocmanager.cfg inventories under a configuration
// root. Missing inventory files are reported on Log and skipped.
type Matcher struct {
	ConfigRoot string
	Hutches    []string
	Log        io.Writer
}

func NewMatcher(cfg *config.Config) *Matcher {
	return &Matcher{
		ConfigRoot: cfg.ConfigRoot,
		Hutches:    cfg.Hutches,
		Log:        os.Stderr,
	}
}

func (m *Matcher) knownHutch(hutch string) bool {
	for _, h := range m.Hutches {
		if h == hutch {
			return true
		}
	}
	return false
}

// files returns the inventory files to scan for the selector, one per
// hutch for the wildcard.
func (m *Matcher) files(hutch string) ([]string, error) {
	if hutch != Wildcard {
		return []string{filepath.Join(m.ConfigRoot, hutch, "iocmanager.cfg")}, nil
	}
	return filepath.Glob(filepath.Join(m.ConfigRoot, "*", "iocmanager.cfg"))
}

// Search returns every inventory line matching patt for the selected
// hutch. The pattern is a regexp fragment matched anywhere inside a
// record's braces. Returns ErrNoMatches when nothing matched.
func (m *Matcher) Search(hutch, patt string) ([]Line, error) {
	if patt == "" {
		return nil, ErrMissingPattern
	}
	if hutch != Wildcard && !m.knownHutch(hutch) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHutch, hutch)
	}
	re, err := regexp.Compile(`\{.*` + patt + `.*\}`)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", patt, err)
	}

	files, err := m.files(hutch)
	if err != nil {
		return nil, fmt.Errorf("listing inventories: %w", err)
	}

	var matches []Line
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			fmt.Fprintf(m.Log, "Skipping %s: %v\n", file, err)
			continue
		}
		tag := filepath.Base(filepath.Dir(file))
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			if text := sc.Text(); re.MatchString(text) {
				matches = append(matches, Line{File: file, Hutch: tag, Text: text})
			}
		}
		err = sc.Err()
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
	}
	if len(matches) == 0 {
		return nil, ErrNoMatches
	}
	return matches, nil
}

// Find runs Search and decodes each matched line into a Record. A line
// that survives normalization but still fails to decode aborts the
// batch with a *NormalizeError.
func (m *Matcher) Find(hutch, patt string) ([]Record, error) {
	lines, err := m.Search(hutch, patt)
	if err != nil {
		return nil, err
	}

	recs := make([]Record, 0, len(lines))
	for _, line := range lines {
		clean := cfgjson.NormalizeLine(line.Text)
		if clean == "" {
			continue
		}
		var rec Record
		if err := json.Unmarshal([]byte(clean), &rec); err != nil {
			return nil, &NormalizeError{Line: line.Text, Err: err}
		}
		if hutch == Wildcard {
			rec.Hutch = line.Hutch
		}
		recs = append(recs, rec)
	}
	if len(recs) == 0 {
		return nil, ErrNoMatches
	}
	return recs, nil
}
