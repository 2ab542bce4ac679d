package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestGather_UsageError(t *testing.T) {
	var out, errw bytes.Buffer
	err := Gather([]string{"onlyone"}, &out, &errw)
	if err == nil || !strings.Contains(err.Error(), "usage") {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestGather_UnknownFlag(t *testing.T) {
	var out, errw bytes.Buffer
	if err := Gather([]string{"--bogus", "patt", "tmo"}, &out, &errw); err == nil {
		t.Fatal("expected flag parse error")
	}
}

func TestGrep_UsageError(t *testing.T) {
	var out, errw bytes.Buffer
	err := Grep([]string{}, &out, &errw)
	if err == nil || !strings.Contains(err.Error(), "usage") {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestDefaultDest(t *testing.T) {
	got := defaultDest("ioc-x")
	if !strings.HasSuffix(got, "ioc-x_alias") {
		t.Errorf("defaultDest = %q", got)
	}
}
