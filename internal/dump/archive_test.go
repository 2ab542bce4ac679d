package dump

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestBundle(t *testing.T) {
	srcDir := filepath.Join(t.TempDir(), "ioc-x_alias")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(srcDir, "record_alias_00.txt"), []byte("A  B\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(srcDir, "record_alias_01.txt"), []byte("C  D\n"), 0644); err != nil {
		t.Fatal(err)
	}

	dest := filepath.Join(t.TempDir(), "ioc-x_alias.tar.gz")
	if err := Bundle(srcDir, dest); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(dest)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	gr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	defer gr.Close()

	entries := map[string]string{}
	tr := tar.NewReader(gr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			t.Fatal(err)
		}
		entries[hdr.Name] = string(data)
	}

	if got := entries["ioc-x_alias/record_alias_00.txt"]; got != "A  B\n" {
		t.Errorf("first entry = %q", got)
	}
	if got := entries["ioc-x_alias/record_alias_01.txt"]; got != "C  D\n" {
		t.Errorf("second entry = %q", got)
	}
}

func TestBundle_MissingSource(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.tar.gz")
	if err := Bundle(filepath.Join(t.TempDir(), "nope"), dest); err == nil {
		t.Fatal("expected error for missing source dir")
	}
}
