// Package config handles braceglob configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the name of the config file.
	FileName = ".braceglob.yaml"
	// EnvFile is the dotenv file read next to the config file.
	EnvFile = ".env"

	EnvFlags         = "BRACEGLOB_FLAGS"
	EnvForceFallback = "BRACEGLOB_FORCE_FALLBACK"
	EnvNativeBraces  = "BRACEGLOB_NATIVE_BRACES"
	EnvLogLevel      = "BRACEGLOB_LOG_LEVEL"
)

// Config represents the braceglob configuration.
type Config struct {
	Glob GlobConfig `yaml:"glob"`
	Log  LogConfig  `yaml:"log"`
}

// GlobConfig holds matching defaults.
type GlobConfig struct {
	// Flags are flag names applied to every glob, e.g. ["brace", "mark"].
	Flags []string `yaml:"flags"`
	// ForceFallback always expands braces manually.
	ForceFallback bool `yaml:"force_fallback"`
	// NativeBraces lets the matcher expand braces itself.
	NativeBraces bool `yaml:"native_braces"`
	// MaxPatternLength bounds pattern length; 0 uses the matcher default.
	MaxPatternLength int `yaml:"max_pattern_length,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns a default configuration.
func Default() *Config {
	return &Config{
		Glob: GlobConfig{
			Flags:        []string{"brace"},
			NativeBraces: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads the configuration from a file. Fields missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to a file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// ApplyEnv overrides fields from BRACEGLOB_* environment variables.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvFlags); ok {
		c.Glob.Flags = splitList(v)
	}
	if v, ok := os.LookupEnv(EnvForceFallback); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvForceFallback, err)
		}
		c.Glob.ForceFallback = b
	}
	if v, ok := os.LookupEnv(EnvNativeBraces); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvNativeBraces, err)
		}
		c.Glob.NativeBraces = b
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Log.Level = v
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// FindRoot searches for a config file starting from the given path
// and walking up the directory tree.
func FindRoot(startPath string) (string, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	current := absPath
	for {
		if Exists(current) {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("no %s in %s or any parent", FileName, startPath)
		}
		current = parent
	}
}

// Exists checks if a config file exists in dir.
func Exists(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, FileName))
	return err == nil && !info.IsDir()
}

// Resolve builds the effective configuration for work done in dir.
// An explicit path wins; otherwise the nearest config file up the tree is
// used, and defaults apply when there is none. A .env next to the config
// (or in dir) is loaded best effort before environment overrides apply.
func Resolve(dir, path string) (*Config, error) {
	cfg := Default()
	envDir := dir

	if path == "" {
		if root, err := FindRoot(dir); err == nil {
			path = filepath.Join(root, FileName)
		}
	}
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		envDir = filepath.Dir(path)
	}

	godotenv.Load(filepath.Join(envDir, EnvFile)) // Best effort, .env may not exist

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}
