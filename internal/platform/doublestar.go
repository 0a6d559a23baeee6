package platform

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/justrnr500/braceglob/internal/capture"
)

// DefaultMaxPatternLength is the longest pattern Doublestar accepts when
// MaxPatternLength is unset.
const DefaultMaxPatternLength = 4096

// Doublestar matches patterns against the OS filesystem with doublestar.
type Doublestar struct {
	// NativeBraces lets doublestar expand {a,b} itself when Brace is
	// requested. Without it braces are always literal.
	NativeBraces bool

	// MaxPatternLength bounds the pattern length; 0 means
	// DefaultMaxPatternLength.
	MaxPatternLength int
}

// NewDoublestar returns a matcher with native brace support.
func NewDoublestar() *Doublestar {
	return &Doublestar{NativeBraces: true}
}

// BraceFlag implements Matcher.
func (d *Doublestar) BraceFlag() Flags {
	if d.NativeBraces {
		return Brace
	}
	return 0
}

// Glob implements Matcher.
func (d *Doublestar) Glob(ctx context.Context, pattern string, flags Flags) ([]string, error) {
	limit := d.MaxPatternLength
	if limit <= 0 {
		limit = DefaultMaxPatternLength
	}
	if len(pattern) >= limit {
		return d.fail(ctx, fmt.Errorf("pattern exceeds the maximum allowed length of %d characters", limit))
	}

	noEscape := flags&NoEscape != 0
	braces := flags&Brace != 0 && d.NativeBraces
	if braces && !doublestar.ValidatePattern(quoteMeta(pattern, noEscape, true)) {
		// An unbalanced group is matched literally, like GLOB_BRACE does.
		braces = false
	}

	var matches []string
	if lit, ok := literalPath(pattern, noEscape, braces); ok {
		if _, err := os.Lstat(lit); err == nil {
			matches = []string{lit}
		} else if flags&Err != 0 && !errors.Is(err, fs.ErrNotExist) {
			return d.fail(ctx, err)
		}
	} else if pattern != "" {
		var opts []doublestar.GlobOption
		if flags&Err != 0 {
			opts = append(opts, doublestar.WithFailOnIOErrors())
		}

		var err error
		matches, err = doublestar.FilepathGlob(quoteMeta(pattern, noEscape, braces), opts...)
		if err != nil {
			return d.fail(ctx, err)
		}
	}

	if flags&(Mark|OnlyDir) != 0 {
		var err error
		matches, err = markDirs(matches, flags)
		if err != nil {
			return d.fail(ctx, err)
		}
	}

	if flags&NoSort == 0 {
		slices.Sort(matches)
	}

	if len(matches) == 0 {
		if flags&NoCheck != 0 {
			return []string{pattern}, nil
		}
		return []string{}, nil
	}
	return matches, nil
}

func (d *Doublestar) fail(ctx context.Context, err error) ([]string, error) {
	capture.Raise(ctx, capture.SeverityWarning, err)
	return nil, ErrFailed
}

// markDirs applies OnlyDir filtering and Mark suffixing.
func markDirs(matches []string, flags Flags) ([]string, error) {
	out := matches[:0]
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			if flags&Err != 0 {
				return nil, err
			}
			if flags&OnlyDir == 0 {
				out = append(out, m)
			}
			continue
		}
		if !info.IsDir() {
			if flags&OnlyDir == 0 {
				out = append(out, m)
			}
			continue
		}
		if flags&Mark != 0 && !strings.HasSuffix(m, string(os.PathSeparator)) {
			m += string(os.PathSeparator)
		}
		out = append(out, m)
	}
	return out, nil
}

// quoteMeta rewrites pattern into doublestar syntax. With noEscape every
// backslash becomes a literal. Without braces, { and } are escaped so
// doublestar does not treat them as alternation.
func quoteMeta(pattern string, noEscape, braces bool) string {
	var b strings.Builder
	b.Grow(len(pattern) + 4)

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && noEscape:
			b.WriteString(`\\`)
		case c == '\\':
			b.WriteByte(c)
			if i+1 < len(pattern) {
				i++
				b.WriteByte(pattern[i])
			}
		case (c == '{' || c == '}') && !braces:
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// literalPath returns the path pattern names when it contains no
// wildcards, with escapes removed. A trailing separator is kept. A
// trailing lone backslash is left for doublestar to reject.
func literalPath(pattern string, noEscape, braces bool) (string, bool) {
	if pattern == "" {
		return "", false
	}

	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && !noEscape:
			if i+1 == len(pattern) {
				return "", false
			}
			i++
			b.WriteByte(pattern[i])
		case c == '*' || c == '?' || c == '[':
			return "", false
		case c == '{' && braces:
			return "", false
		default:
			b.WriteByte(c)
		}
	}
	lit := b.String()
	clean := filepath.Clean(lit)
	if strings.HasSuffix(lit, string(filepath.Separator)) && !strings.HasSuffix(clean, string(filepath.Separator)) {
		clean += string(filepath.Separator)
	}
	return clean, true
}
