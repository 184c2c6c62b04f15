package config

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets/*.yaml
var presetFS embed.FS

// DefaultPreset is used when no variant is named
const DefaultPreset = "survivor"

// Loader loads variant configs from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: ".",
	}
}

// NewFSLoader creates a new config loader from fs.FS.
// basePath is the directory inside fsys holding the YAML files.
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadConfig loads <name>.yaml
func (l *Loader) LoadConfig(name string) (*Config, error) {
	file := path.Join(l.basePath, name+".yaml")
	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file, err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	return cfg, nil
}

// Names lists the configs available to this loader, sorted
func (l *Loader) Names() ([]string, error) {
	matches, err := fs.Glob(l.fsys, path.Join(l.basePath, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list configs: %w", err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// Parse decodes a YAML config
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Presets returns the loader for the embedded variant presets
func Presets() *Loader {
	return NewFSLoader(presetFS, "presets")
}

// LoadPreset loads an embedded variant preset by name
func LoadPreset(name string) (*Config, error) {
	return Presets().LoadConfig(name)
}

// Load resolves a variant config.
// Search order: customPath -> ~/.tinytown/<name>.yaml -> ./configs/<name>.yaml -> embedded preset
func Load(name, customPath string) (*Config, error) {
	if name == "" {
		name = DefaultPreset
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if cfg.Name == "" {
			cfg.Name = name
		}
		return cfg, nil
	}

	// Try user config directory
	if dir := userConfigDir(); dir != "" {
		if cfg, err := NewLoader(dir).LoadConfig(name); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := NewLoader("configs").LoadConfig(name); err == nil {
		return cfg, nil
	}

	return LoadPreset(name)
}

// userConfigDir returns the user config directory, or empty if home is unavailable
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tinytown")
}
