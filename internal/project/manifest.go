package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a loaded lsys.toml plus where it was found.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config is the manifest schema.
type Config struct {
	System  SystemConfig  `toml:"system"`
	Display DisplayConfig `toml:"display"`
}

// SystemConfig describes the L-system itself.
type SystemConfig struct {
	Name        string             `toml:"name"`
	Axiom       string             `toml:"axiom"`
	Rules       []string           `toml:"rules"`
	Ignore      string             `toml:"ignore"`
	Iterations  int                `toml:"iterations"`
	Seed        int64              `toml:"seed"`
	Definitions map[string]float64 `toml:"definitions"`
}

// DisplayConfig carries turtle hints for external renderers. The engine never
// reads it; it is preserved so manifests stay the single source of truth.
type DisplayConfig struct {
	Angle   float64 `toml:"angle"`
	Heading float64 `toml:"heading"`
}

// Load parses and validates one manifest file.
func Load(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := validate(path, meta, &cfg); err != nil {
		return nil, err
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}

// Find walks up from startDir and loads the nearest manifest.
func Find(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindLsysToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

func validate(path string, meta toml.MetaData, cfg *Config) error {
	if !meta.IsDefined("system") {
		return fmt.Errorf("%s: missing [system]", path)
	}
	if !meta.IsDefined("system", "axiom") || strings.TrimSpace(cfg.System.Axiom) == "" {
		return fmt.Errorf("%s: missing [system].axiom", path)
	}
	if cfg.System.Iterations < 0 {
		return fmt.Errorf("%s: [system].iterations must not be negative", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// Template renders a starter manifest for `lsys init`.
func Template(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[system]\n")
	fmt.Fprintf(&b, "name = %q\n", name)
	fmt.Fprintf(&b, "axiom = \"F\"\n")
	fmt.Fprintf(&b, "rules = [\n")
	fmt.Fprintf(&b, "    \"F ? F + F - F - F + F\",\n")
	fmt.Fprintf(&b, "]\n")
	fmt.Fprintf(&b, "iterations = 3\n")
	fmt.Fprintf(&b, "\n[display]\n")
	fmt.Fprintf(&b, "angle = 90.0\n")
	return b.String()
}
