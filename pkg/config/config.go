// Package config loads the optional lattice.yaml toolkit configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file.
const FileName = "lattice.yaml"

// SchemaMajor is the only configuration schema major version understood.
const SchemaMajor = "v1"

// Config represents the optional lattice.yaml configuration.
type Config struct {
	Version string       `yaml:"version,omitempty"`
	Layout  LayoutConfig `yaml:"layout"`
	Text    TextConfig   `yaml:"text"`
	Debug   DebugConfig  `yaml:"debug"`
}

// LayoutConfig contains layout solver settings.
type LayoutConfig struct {
	// Snap rounds flexible shares down to whole pixels.
	Snap *bool `yaml:"snap,omitempty"`
	// UnboundedWarning logs filling children under an unbounded axis.
	UnboundedWarning *bool `yaml:"unbounded_warning,omitempty"`
}

// TextConfig contains text measurement settings.
type TextConfig struct {
	Size     float64 `yaml:"size,omitempty"`
	Measurer string  `yaml:"measurer,omitempty"`
}

// DebugConfig contains diagnostics settings.
type DebugConfig struct {
	VerboseErrors bool `yaml:"verbose_errors,omitempty"`
}

// Measurers.
const (
	MeasurerFont = "font"
	MeasurerCell = "cell"
)

// Resolved contains configuration values with defaults applied.
type Resolved struct {
	Root             string
	ModulePath       string
	Version          string
	Snap             bool
	UnboundedWarning bool
	TextSize         float64
	Measurer         string
	VerboseErrors    bool
}

// Default returns the configuration used when no file is present.
func Default() *Resolved {
	return &Resolved{
		Version:          SchemaMajor + ".0.0",
		Snap:             true,
		UnboundedWarning: true,
		TextSize:         16,
		Measurer:         MeasurerFont,
	}
}

// LoadOptional reads lattice.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes a configuration document. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads lattice.yaml from dir (if present), validates it and applies
// defaults. The module path is read from dir/go.mod when there is one.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	resolved.Root = dir
	resolved.ModulePath = modulePath(dir)
	return resolved, nil
}

// Resolve validates cfg and applies defaults.
func (cfg *Config) Resolve() (*Resolved, error) {
	out := Default()

	if v := strings.TrimSpace(cfg.Version); v != "" {
		if !strings.HasPrefix(v, "v") {
			v = "v" + v
		}
		if !semver.IsValid(v) {
			return nil, fmt.Errorf("invalid version %q: not a semantic version", cfg.Version)
		}
		if major := semver.Major(v); major != SchemaMajor {
			return nil, fmt.Errorf("unsupported version %q: want %s.x", cfg.Version, SchemaMajor)
		}
		out.Version = semver.Canonical(v)
	}

	if cfg.Layout.Snap != nil {
		out.Snap = *cfg.Layout.Snap
	}
	if cfg.Layout.UnboundedWarning != nil {
		out.UnboundedWarning = *cfg.Layout.UnboundedWarning
	}

	if cfg.Text.Size < 0 {
		return nil, fmt.Errorf("invalid text.size %v: must be positive", cfg.Text.Size)
	}
	if cfg.Text.Size > 0 {
		out.TextSize = cfg.Text.Size
	}

	switch m := strings.ToLower(strings.TrimSpace(cfg.Text.Measurer)); m {
	case "":
	case MeasurerFont, MeasurerCell:
		out.Measurer = m
	default:
		return nil, fmt.Errorf("invalid text.measurer %q: want %q or %q", cfg.Text.Measurer, MeasurerFont, MeasurerCell)
	}

	out.VerboseErrors = cfg.Debug.VerboseErrors
	return out, nil
}

// FindProjectRoot walks up from dir to the nearest directory holding
// lattice.yaml or go.mod.
func FindProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		for _, name := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s or go.mod found", FileName)
		}
		dir = parent
	}
}

func modulePath(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}
