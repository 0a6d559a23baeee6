package glob

import (
	"context"

	"github.com/charmbracelet/log"
)

// leafFunc resolves a pattern the expander is done with.
type leafFunc func(ctx context.Context, pattern string, flags Flag) ([]string, error)

type expander struct {
	leaf   leafFunc
	logger *log.Logger
}

// expand resolves the first brace group of pattern, recursing on every
// alternative so nested groups and later groups are expanded too. Patterns
// without a usable group go to the leaf with Brace cleared.
func (e *expander) expand(ctx context.Context, pattern string, flags Flag) ([]string, error) {
	if flags&Brace == 0 {
		return e.leaf(ctx, pattern, flags)
	}
	flags &^= Brace

	begin, ok := locateOpenBrace(pattern, flags)
	if !ok {
		return e.leaf(ctx, pattern, flags)
	}

	next, ok := nextBoundary(pattern, begin+1, flags)
	if !ok {
		return e.malformed(ctx, pattern, flags)
	}
	rest := next
	for pattern[rest] != '}' {
		if rest, ok = nextBoundary(pattern, rest+1, flags); !ok {
			return e.malformed(ctx, pattern, flags)
		}
	}

	prefix, suffix := pattern[:begin], pattern[rest+1:]

	var paths []string
	p := begin + 1
	for {
		sub := prefix + pattern[p:next] + suffix
		res, err := e.expand(ctx, sub, flags|Brace)
		if err != nil {
			return nil, err
		}
		paths = append(paths, res...)

		if pattern[next] == '}' {
			break
		}
		p = next + 1
		// The group was fully walked above, so this always succeeds.
		next, _ = nextBoundary(pattern, p, flags)
	}

	return dedupe(paths), nil
}

func (e *expander) malformed(ctx context.Context, pattern string, flags Flag) ([]string, error) {
	e.logger.Debug("unbalanced brace group, matching literally", "pattern", pattern)
	return e.leaf(ctx, pattern, flags)
}

// dedupe drops repeated entries, keeping the first occurrence.
func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
