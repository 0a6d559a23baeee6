// Package main is the entry point for the braceglob CLI.
package main

import (
	"github.com/justrnr500/braceglob/internal/cmd"
)

func main() {
	cmd.Execute()
}
