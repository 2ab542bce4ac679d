// Package render draws search results and status lines for the
// terminal. All output goes through an io.Writer so commands stay
// testable.
package render

import (
	"fmt"
	"io"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/aberges/pvaliases/internal/inventory"
	"github.com/aberges/pvaliases/internal/release"
)

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	blueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	matchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Notice prints a status line in light green.
func Notice(w io.Writer, msg string) {
	fmt.Fprintln(w, greenStyle.Render(msg))
}

// Warn prints a status line in light yellow.
func Warn(w io.Writer, msg string) {
	fmt.Fprintln(w, yellowStyle.Render(msg))
}

func newTable() *table.Table {
	return table.New().Border(lipgloss.NormalBorder())
}

// RecordsTable renders matched inventory records. The hutch column is
// only shown for wildcard searches, where records span several hutches.
func RecordsTable(recs []inventory.Record, withHutch bool) string {
	headers := []string{"id", "dir", yellowStyle.Render("parent_ioc"), "host", "port", blueStyle.Render("alias"), redStyle.Render("disable")}
	if withHutch {
		headers = append([]string{"hutch"}, headers...)
	}

	t := newTable().Headers(headers...)
	for _, r := range recs {
		disable := redStyle.Render("False")
		if r.Disable {
			disable = greenStyle.Render("True")
		}
		row := []string{r.ID, r.Dir, r.ParentIOC, r.Host, r.Port, r.Alias, disable}
		if withHutch {
			row = append([]string{r.Hutch}, row...)
		}
		t.Row(row...)
	}
	return t.String()
}

// PairsTable renders the record/alias substitutions found in a st.cmd.
func PairsTable(pairs []release.Pair) string {
	t := newTable().Headers("record", blueStyle.Render("alias"))
	for _, p := range pairs {
		t.Row(p.Record, p.Alias)
	}
	return t.String()
}

// PVTable renders one expanded template set, PV beside alias.
func PVTable(lines []release.TemplateLine) string {
	t := newTable().Headers("pv", blueStyle.Render("alias"))
	for _, l := range lines {
		t.Row(l.PV(), l.Alias())
	}
	return t.String()
}

// Highlight wraps every match of re in line with the match style.
func Highlight(line string, re *regexp.Regexp) string {
	return re.ReplaceAllStringFunc(line, func(m string) string {
		return matchStyle.Render(m)
	})
}

var ansiRe = regexp.MustCompile("\x1b(?:[@-Z\\\\-_]|\\[[0-?]*[ -/]*[@-~])")

// StripANSI removes terminal escape sequences, mainly for tests that
// assert on rendered content.
func StripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}
