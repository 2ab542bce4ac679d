package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ConfigRoot != "/cds/group/pcds/pyps/config" {
		t.Errorf("ConfigRoot = %q", cfg.ConfigRoot)
	}
	if cfg.EPICSRoot != "/cds/group/pcds/epics/" {
		t.Errorf("EPICSRoot = %q", cfg.EPICSRoot)
	}
	if len(cfg.Hutches) != 19 {
		t.Errorf("expected 19 default hutches, got %d", len(cfg.Hutches))
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	path := writeConfig(t, `
config_root: /tmp/config
epics_root: /tmp/epics
hutches: [abc, def]
`)
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ConfigRoot != "/tmp/config" {
		t.Errorf("ConfigRoot = %q", cfg.ConfigRoot)
	}
	// EPICSRoot must come back slash-terminated.
	if cfg.EPICSRoot != "/tmp/epics/" {
		t.Errorf("EPICSRoot = %q, want trailing slash", cfg.EPICSRoot)
	}
	if len(cfg.Hutches) != 2 || cfg.Hutches[0] != "abc" {
		t.Errorf("Hutches = %v", cfg.Hutches)
	}
}

func TestLoadFrom_PartialFileKeepsOtherDefaults(t *testing.T) {
	path := writeConfig(t, "config_root: /tmp/config\n")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.EPICSRoot != "/cds/group/pcds/epics/" {
		t.Errorf("EPICSRoot = %q", cfg.EPICSRoot)
	}
	if len(cfg.Hutches) == 0 {
		t.Error("Hutches should fall back to the defaults")
	}
}

func TestLoadFrom_BadYAML(t *testing.T) {
	path := writeConfig(t, "config_root: [\n")
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
