// Package dump persists expanded record/alias sets as fixed-width text
// files, one file per substitution pair.
package dump

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aberges/pvaliases/internal/release"
)

// Writer saves template sets under Dir, creating it on first use.
type Writer struct {
	Dir string
	Log io.Writer
}

// WriteSet saves one expanded set as record_alias_NN.txt and returns
// the file path. Files whose content is already current are left
// untouched so repeated runs do not churn mtimes.
func (w *Writer) WriteSet(idx int, lines []release.TemplateLine) (string, error) {
	if _, err := os.Stat(w.Dir); os.IsNotExist(err) {
		fmt.Fprintf(w.Log, "Making directory: %s\n", w.Dir)
		if err := os.MkdirAll(w.Dir, 0755); err != nil {
			return "", fmt.Errorf("creating %s: %w", w.Dir, err)
		}
	}

	var buf bytes.Buffer
	for _, l := range lines {
		fmt.Fprintf(&buf, "%-61s%-61s\n", l.PV(), l.Alias())
	}

	path := filepath.Join(w.Dir, fmt.Sprintf("record_alias_%02d.txt", idx))
	if prev, err := os.ReadFile(path); err == nil && bytes.Equal(prev, buf.Bytes()) {
		return path, nil
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
