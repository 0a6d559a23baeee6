// Package platform provides the primitive path matcher: a glob that
// understands wildcards and character classes but knows nothing about
// brace expansion unless told to use its native support.
package platform

import (
	"context"
	"errors"
	"strings"
)

// Flags are the matcher's native option bits. The values follow the
// usual libc layout.
type Flags int

const (
	Err      Flags = 1 << 0
	Mark     Flags = 1 << 1
	NoSort   Flags = 1 << 2
	NoCheck  Flags = 1 << 4
	NoEscape Flags = 1 << 6
	Brace    Flags = 1 << 10
	OnlyDir  Flags = 1 << 13
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{Err, "GLOB_ERR"},
	{Mark, "GLOB_MARK"},
	{NoSort, "GLOB_NOSORT"},
	{NoCheck, "GLOB_NOCHECK"},
	{NoEscape, "GLOB_NOESCAPE"},
	{Brace, "GLOB_BRACE"},
	{OnlyDir, "GLOB_ONLYDIR"},
}

func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ErrFailed is returned when a match could not be performed. The details
// are raised as a warning on the context's capture stack.
var ErrFailed = errors.New("glob failed")

// Matcher expands a pattern against the filesystem.
type Matcher interface {
	// Glob returns the paths matching pattern. Zero matches is not a
	// failure. On failure it raises the cause on the capture stack carried
	// by ctx and returns ErrFailed.
	Glob(ctx context.Context, pattern string, flags Flags) ([]string, error)

	// BraceFlag returns Brace when the matcher expands braces natively,
	// and 0 otherwise.
	BraceFlag() Flags
}
