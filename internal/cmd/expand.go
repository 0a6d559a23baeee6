package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justrnr500/braceglob/internal/glob"
)

var expandCmd = &cobra.Command{
	Use:   "expand PATTERN...",
	Short: "Show the patterns a brace pattern expands to",
	Long: `Expand brace alternatives without touching the filesystem.

Each output line is one brace-free pattern, in the order glob would match
them. Duplicates are dropped. Unbalanced groups are left as they are.

Examples:
  braceglob expand '{a,b}{1,2}'
  braceglob expand '{{,*.}alph,{,*.}bet}a'
  braceglob expand --noescape 'x\{a,b}'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExpand,
}

var (
	expandNoEscape bool
	expandJSON     bool
)

func init() {
	rootCmd.AddCommand(expandCmd)
	expandCmd.Flags().BoolVar(&expandNoEscape, "noescape", false, "Treat backslash as a literal")
	expandCmd.Flags().BoolVar(&expandJSON, "json", false, "Output as JSON")
}

func runExpand(cmd *cobra.Command, args []string) error {
	flags := glob.Brace
	if expandNoEscape {
		flags |= glob.NoEscape
	}

	expanded := make(map[string][]string, len(args))
	var order []string
	for _, pattern := range args {
		if _, ok := expanded[pattern]; !ok {
			order = append(order, pattern)
		}
		expanded[pattern] = glob.Expand(pattern, flags)
	}

	out := cmd.OutOrStdout()
	if expandJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(expanded)
	}

	for _, pattern := range order {
		for _, p := range expanded[pattern] {
			fmt.Fprintln(out, p)
		}
	}
	return nil
}
