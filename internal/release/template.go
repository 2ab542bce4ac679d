package release

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// TemplateLine is one expanded alias.db entry split into its fields.
// The first field is the substituted PV name and the last its alias;
// templates may define extra intermediate fields that pass through.
type TemplateLine []string

// PV returns the expanded record name.
func (l TemplateLine) PV() string { return l[0] }

// Alias returns the expanded alias name.
func (l TemplateLine) Alias() string { return l[len(l)-1] }

var (
	macroWrapperRe = regexp.MustCompile(`alias\(| +`)
	closeParenRe   = regexp.MustCompile(`\)[ \t]*(\r?\n|$)`)
)

// ExpandTemplate loads the parent release's db/alias.db and substitutes
// the supplied record and alias into every RECORD/ALIAS macro token.
// Tokens are matched literally, so unrelated text can never pick up a
// substitution.
func (r Resolver) ExpandTemplate(parentRelease, record, alias string) ([]TemplateLine, error) {
	path := filepath.Join(parentRelease, "db", "alias.db")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path}
	}

	// Strip the alias(...) macro-call wrapper and internal whitespace,
	// leaving one comma-separated field list per line.
	text := macroWrapperRe.ReplaceAllString(string(data), "")
	text = closeParenRe.ReplaceAllString(text, "\n")
	text = strings.ReplaceAll(text, "$(RECORD)", record)
	text = strings.ReplaceAll(text, "$(ALIAS)", alias)

	var lines []TemplateLine
	for _, entry := range strings.Fields(text) {
		entry = strings.ReplaceAll(entry, `"`, "")
		lines = append(lines, TemplateLine(strings.Split(entry, ",")))
	}
	return lines, nil
}
