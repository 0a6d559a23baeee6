package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/justrnr500/braceglob/internal/config"
	"github.com/justrnr500/braceglob/internal/glob"
	"github.com/justrnr500/braceglob/internal/logging"
	"github.com/justrnr500/braceglob/internal/platform"
)

// getConfig resolves the effective configuration for the working directory.
func getConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Resolve(cwd, configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

// getGlobber builds a Globber and its default flags from cfg.
func getGlobber(cfg *config.Config, logOut io.Writer) (*glob.Globber, glob.Flag, error) {
	logger, err := logging.New(logOut, cfg.Log.Level)
	if err != nil {
		return nil, 0, err
	}

	flags, err := glob.ParseFlags(cfg.Glob.Flags)
	if err != nil {
		return nil, 0, fmt.Errorf("config flags: %w", err)
	}

	matcher := &platform.Doublestar{
		NativeBraces:     cfg.Glob.NativeBraces,
		MaxPatternLength: cfg.Glob.MaxPatternLength,
	}
	g := glob.New(glob.WithMatcher(matcher), glob.WithLogger(logger))
	return g, flags, nil
}
