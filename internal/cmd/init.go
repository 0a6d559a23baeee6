package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/justrnr500/braceglob/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a braceglob config file",
	Long: `Create a .braceglob.yaml with default settings in the current directory.

Settings can be overridden per run with BRACEGLOB_* variables, either in
the environment or in a .env file next to the config. The .env file is
added to .gitignore.`,
	RunE: runInit,
}

var (
	initQuiet    bool
	initFallback bool
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initQuiet, "quiet", "q", false, "Suppress output")
	initCmd.Flags().BoolVar(&initFallback, "fallback", false, "Always expand braces manually")
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	out := cmd.OutOrStdout()
	path := filepath.Join(cwd, config.FileName)

	if config.Exists(cwd) {
		if !initQuiet {
			fmt.Fprintln(out, "Already initialized:", path)
		}
		return nil
	}

	cfg := config.Default()
	cfg.Glob.ForceFallback = initFallback
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	if !initQuiet {
		fmt.Fprintln(out, "✓ Created", config.FileName)
	}

	if err := appendIgnore(filepath.Join(cwd, ".gitignore"), config.EnvFile); err != nil {
		return fmt.Errorf("update .gitignore: %w", err)
	}

	return nil
}

// appendIgnore adds entry to the ignore file at path unless a line already
// names it. The file is created when missing.
func appendIgnore(path, entry string) error {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == entry {
			return nil
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		entry = "\n" + entry
	}
	if _, err := fmt.Fprintln(f, entry); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
