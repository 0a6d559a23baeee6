package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/justrnr500/braceglob/internal/glob"
)

var globCmd = &cobra.Command{
	Use:   "glob PATTERN...",
	Short: "List paths matching patterns",
	Long: `List paths matching each pattern.

Flags from the config file apply unless --flags is given. Available flags:
mark, nosort, nocheck, noescape, brace, onlydir, err.

Examples:
  braceglob glob 'src/{cmd,internal}/*.go'
  braceglob glob -b --fallback 'docs/{,*.}{md,txt}'
  braceglob glob -f brace,onlydir 'internal/*'
  braceglob glob 'src/**/*.go' --exclude '**/*_test.go'
  braceglob glob '*.{yaml,yml}' --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGlob,
}

var (
	globFlags    []string
	globBrace    bool
	globFallback bool
	globExclude  []string
	globJSON     bool
	globNull     bool
)

func init() {
	rootCmd.AddCommand(globCmd)
	globCmd.Flags().StringSliceVarP(&globFlags, "flags", "f", nil, "Glob flags (comma separated)")
	globCmd.Flags().BoolVarP(&globBrace, "brace", "b", false, "Expand brace alternatives")
	globCmd.Flags().BoolVar(&globFallback, "fallback", false, "Expand braces manually even if the matcher supports them")
	globCmd.Flags().StringSliceVar(&globExclude, "exclude", nil, "Drop matches matching these doublestar patterns")
	globCmd.Flags().BoolVar(&globJSON, "json", false, "Output as JSON")
	globCmd.Flags().BoolVarP(&globNull, "null", "0", false, "Separate paths with NUL instead of newline")
}

// globResult is the JSON form of one pattern's matches.
type globResult struct {
	Pattern string   `json:"pattern"`
	Flags   []string `json:"flags"`
	Matches []string `json:"matches"`
	Count   int      `json:"count"`
}

func runGlob(cmd *cobra.Command, args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}

	g, flags, err := getGlobber(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("flags") {
		if flags, err = glob.ParseFlags(globFlags); err != nil {
			return err
		}
	}
	if globBrace {
		flags |= glob.Brace
	}
	fallback := globFallback || cfg.Glob.ForceFallback

	results := make([]globResult, 0, len(args))
	for _, pattern := range args {
		matches, err := g.Glob(cmd.Context(), pattern, flags, fallback)
		if err != nil {
			return err
		}
		matches = glob.Exclude(matches, globExclude)
		results = append(results, globResult{
			Pattern: pattern,
			Flags:   flags.Names(),
			Matches: matches,
			Count:   len(matches),
		})
	}

	out := cmd.OutOrStdout()
	if globJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"results": results,
			"count":   len(results),
		})
	}

	sep := "\n"
	if globNull {
		sep = "\x00"
	}
	return writeLines(out, results, sep)
}

func writeLines(w io.Writer, results []globResult, sep string) error {
	for _, r := range results {
		for _, m := range r.Matches {
			if _, err := fmt.Fprint(w, m, sep); err != nil {
				return err
			}
		}
	}
	return nil
}
