package glob

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// MatchAny reports whether path matches any of the given patterns.
// Patterns use doublestar syntax (** matches any depth) and are compared
// against the slash form of path.
func MatchAny(path string, patterns []string) bool {
	if path == "" || len(patterns) == 0 {
		return false
	}

	path = filepath.ToSlash(path)
	for _, p := range patterns {
		matched, err := doublestar.Match(p, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// Exclude returns paths that match none of the patterns.
func Exclude(paths, patterns []string) []string {
	if len(patterns) == 0 {
		return paths
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !MatchAny(p, patterns) {
			out = append(out, p)
		}
	}
	return out
}
