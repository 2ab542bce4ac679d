package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the site-specific filesystem roots the tool scans.
// Stored in ~/.config/pvaliases/config.yaml; most installs never create
// the file and run on the PCDS defaults.
type Config struct {
	// ConfigRoot is the directory holding one <hutch>/iocmanager.cfg per hutch.
	ConfigRoot string `yaml:"config_root"`
	// EPICSRoot prefixes short-form "ioc/..." release paths.
	EPICSRoot string `yaml:"epics_root"`
	// Hutches overrides the known hutch codes.
	Hutches []string `yaml:"hutches"`
}

var defaultHutches = []string{
	"xpp", "xcs", "cxi", "mfx", "mec", "tmo", "rix", "xrt",
	"aux", "det", "fee", "hpl", "icl", "las", "lfe", "kfe",
	"tst", "txi", "thz",
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pvaliases", "config.yaml"), nil
}

// Load reads ~/.config/pvaliases/config.yaml.
// A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads and parses the config file at path, applying defaults
// for anything left unset.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("cannot parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.ConfigRoot == "" {
		cfg.ConfigRoot = "/cds/group/pcds/pyps/config"
	}
	if cfg.EPICSRoot == "" {
		cfg.EPICSRoot = "/cds/group/pcds/epics/"
	}
	// Resolve() concatenates, so the root must stay slash-terminated.
	if !strings.HasSuffix(cfg.EPICSRoot, "/") {
		cfg.EPICSRoot += "/"
	}
	if len(cfg.Hutches) == 0 {
		cfg.Hutches = append([]string(nil), defaultHutches...)
	}
}
