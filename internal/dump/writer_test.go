package dump

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aberges/pvaliases/internal/release"
)

func TestWriteSet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ioc-x_alias")
	var log bytes.Buffer
	w := &Writer{Dir: dir, Log: &log}

	lines := []release.TemplateLine{
		{"LM1K2:MCS2:01:m1", "LM1K2:INJ_MP1_MR1"},
		{"LM1K2:MCS2:01:m1.RBV", "LM1K2:INJ_MP1_MR1.RBV"},
	}
	path, err := w.WriteSet(0, lines)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "record_alias_00.txt" {
		t.Errorf("file name = %s", filepath.Base(path))
	}
	if !strings.Contains(log.String(), "Making directory") {
		t.Errorf("directory creation should be reported, log = %q", log.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	rows := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// Fixed-width columns: the alias starts at byte 61.
	if len(rows[0]) != 122 {
		t.Errorf("row width = %d, want 122", len(rows[0]))
	}
	if got := strings.TrimRight(rows[0][:61], " "); got != "LM1K2:MCS2:01:m1" {
		t.Errorf("pv column = %q", got)
	}
	if got := strings.TrimRight(rows[0][61:], " "); got != "LM1K2:INJ_MP1_MR1" {
		t.Errorf("alias column = %q", got)
	}
}

func TestWriteSet_UnchangedContentNotRewritten(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w := &Writer{Dir: dir, Log: &bytes.Buffer{}}
	lines := []release.TemplateLine{{"A", "B"}}

	path, err := w.WriteSet(1, lines)
	if err != nil {
		t.Fatal(err)
	}
	first, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := w.WriteSet(1, lines); err != nil {
		t.Fatal(err)
	}
	second, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !second.ModTime().Equal(first.ModTime()) {
		t.Error("identical content should not be rewritten")
	}
}

func TestWriteSet_SequentialNames(t *testing.T) {
	w := &Writer{Dir: filepath.Join(t.TempDir(), "out"), Log: &bytes.Buffer{}}
	lines := []release.TemplateLine{{"A", "B"}}

	for i, want := range []string{"record_alias_00.txt", "record_alias_01.txt", "record_alias_02.txt"} {
		path, err := w.WriteSet(i, lines)
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Base(path) != want {
			t.Errorf("set %d file = %s, want %s", i, filepath.Base(path), want)
		}
	}
}
