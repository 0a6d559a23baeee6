// Package main is the entry point for the bg CLI (alias for braceglob).
package main

import (
	"github.com/justrnr500/braceglob/internal/cmd"
)

func main() {
	cmd.Execute()
}
