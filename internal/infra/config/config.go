// Where: internal/infra/config/config.go
// What: Optional .housekeeper.yaml load and defaults.
// Why: Let a project rename the housekeeping paths without changing default behavior.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/housekeeper/internal/meta"
	"gopkg.in/yaml.v3"
)

// Config represents the .housekeeper.yaml file.
type Config struct {
	Version int   `yaml:"version"`
	Paths   Paths `yaml:"paths,omitempty"`
	Stage   Stage `yaml:"stage,omitempty"`
}

// Paths holds the housekeeping paths, relative to the working root.
type Paths struct {
	ExeDir    string `yaml:"exe_dir,omitempty"`
	BuildDir  string `yaml:"build_dir,omitempty"`
	EnvSource string `yaml:"env_source,omitempty"`
	StageDir  string `yaml:"stage_dir,omitempty"`
	EnvTarget string `yaml:"env_target,omitempty"`
}

// Stage holds stage-env settings.
type Stage struct {
	RequiredKeys []string `yaml:"required_keys,omitempty"`
}

// Error reports an unreadable or invalid config file.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Default returns the built-in layout.
func Default() Config {
	return Config{
		Version: meta.ConfigVersion,
		Paths: Paths{
			ExeDir:    meta.ExeDir,
			BuildDir:  meta.BuildDir,
			EnvSource: meta.EnvSource,
			StageDir:  meta.StageDir,
			EnvTarget: meta.EnvTarget,
		},
	}
}

// Load reads the config file at path. A missing file yields Default and found=false.
func Load(path string) (cfg Config, found bool, err error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), false, nil
		}
		return Config{}, false, &Error{Path: path, Err: fmt.Errorf("read: %w", err)}
	}
	cfg, err = Parse(payload)
	if err != nil {
		return Config{}, true, &Error{Path: path, Err: err}
	}
	return cfg, true, nil
}

// Parse validates and decodes a config payload, filling unset fields with defaults.
// An empty payload is the default config.
func Parse(payload []byte) (Config, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return Default(), nil
	}
	if err := validateSchema(payload); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	cfg = withDefaults(cfg)
	if err := cfg.checkPaths(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func withDefaults(cfg Config) Config {
	def := Default()
	fill := func(value *string, fallback string) {
		if strings.TrimSpace(*value) == "" {
			*value = fallback
		}
	}
	fill(&cfg.Paths.ExeDir, def.Paths.ExeDir)
	fill(&cfg.Paths.BuildDir, def.Paths.BuildDir)
	fill(&cfg.Paths.EnvSource, def.Paths.EnvSource)
	fill(&cfg.Paths.StageDir, def.Paths.StageDir)
	fill(&cfg.Paths.EnvTarget, def.Paths.EnvTarget)
	return cfg
}

// checkPaths rejects layouts that leave the working root, remove the root or
// the inputs, or stage the env file onto itself.
func (c Config) checkPaths() error {
	fields := []namedPath{
		{"paths.exe_dir", c.Paths.ExeDir},
		{"paths.build_dir", c.Paths.BuildDir},
		{"paths.env_source", c.Paths.EnvSource},
		{"paths.stage_dir", c.Paths.StageDir},
		{"paths.env_target", c.Paths.EnvTarget},
	}
	for _, field := range fields {
		if !filepath.IsLocal(filepath.FromSlash(field.value)) {
			return fmt.Errorf("%s: %q must be a relative path inside the working directory", field.name, field.value)
		}
	}

	for _, dir := range c.removable() {
		if clean(dir.value) == "." {
			return fmt.Errorf("%s: %q must not be the working directory itself", dir.name, dir.value)
		}
	}
	if err := c.Protects(c.Paths.EnvSource, meta.ConfigFile); err != nil {
		return err
	}

	source, target, stage := clean(c.Paths.EnvSource), clean(c.Paths.EnvTarget), clean(c.Paths.StageDir)
	if target == source {
		return fmt.Errorf("paths.env_target: %q must differ from paths.env_source", c.Paths.EnvTarget)
	}
	if target == stage || !within(stage, target) {
		return fmt.Errorf("paths.env_target: %q must be inside paths.stage_dir %q", c.Paths.EnvTarget, c.Paths.StageDir)
	}
	return nil
}

// Protects returns an error when a clean operation would remove one of paths.
// Paths are relative to the working root.
func (c Config) Protects(paths ...string) error {
	for _, dir := range c.removable() {
		for _, path := range paths {
			if within(clean(dir.value), clean(path)) {
				return fmt.Errorf("%s: %q would remove %q", dir.name, dir.value, path)
			}
		}
	}
	return nil
}

type namedPath struct {
	name  string
	value string
}

func (c Config) removable() []namedPath {
	return []namedPath{
		{"paths.exe_dir", c.Paths.ExeDir},
		{"paths.build_dir", c.Paths.BuildDir},
	}
}

func clean(path string) string {
	return filepath.Clean(filepath.FromSlash(path))
}

// within reports whether path is dir or lies below it.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && filepath.IsLocal(rel)
}
