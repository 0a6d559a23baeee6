// Package glob finds path names matching a pattern, expanding {a,b}
// alternatives itself when the underlying matcher cannot.
package glob

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/justrnr500/braceglob/internal/capture"
	"github.com/justrnr500/braceglob/internal/logging"
	"github.com/justrnr500/braceglob/internal/platform"
)

// Globber matches patterns with a platform matcher.
type Globber struct {
	matcher platform.Matcher
	logger  *log.Logger
}

// Option configures a Globber.
type Option func(*Globber)

// WithMatcher sets the primitive matcher. The default is a doublestar
// matcher with native brace support.
func WithMatcher(m platform.Matcher) Option {
	return func(g *Globber) {
		g.matcher = m
	}
}

// WithLogger sets the logger. Uncaptured matcher warnings are logged here.
func WithLogger(l *log.Logger) Option {
	return func(g *Globber) {
		g.logger = l
	}
}

// New returns a Globber.
func New(opts ...Option) *Globber {
	g := &Globber{
		matcher: platform.NewDoublestar(),
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Glob returns the paths matching pattern.
//
// Brace groups are expanded by the matcher when it supports them. When it
// does not, or forceFallback is set, they are expanded here and each
// brace-free pattern is matched separately; results keep alternative order
// and contain no duplicates.
//
// A failed match returns *Error.
func (g *Globber) Glob(ctx context.Context, pattern string, flags Flag, forceFallback bool) ([]string, error) {
	ctx = g.withStack(ctx)

	if g.matcher.BraceFlag() == 0 || forceFallback {
		return g.fallback(ctx, pattern, flags)
	}
	return g.system(ctx, pattern, flags)
}

func (g *Globber) fallback(ctx context.Context, pattern string, flags Flag) ([]string, error) {
	g.logger.Debug("expanding braces manually", "pattern", pattern, "flags", flags)
	e := &expander{leaf: g.system, logger: g.logger}
	return e.expand(ctx, pattern, flags)
}

// system runs the matcher once inside its own capture scope.
func (g *Globber) system(ctx context.Context, pattern string, flags Flag) ([]string, error) {
	native := flags.native(g.matcher.BraceFlag())

	stack, ok := capture.FromContext(ctx)
	if !ok {
		ctx = g.withStack(ctx)
		stack, _ = capture.FromContext(ctx)
	}
	scope := stack.Start(capture.SeverityWarning)
	defer scope.Stop()

	res, err := g.matcher.Glob(ctx, pattern, native)
	captured := scope.Stop()
	if err != nil {
		gerr := &Error{Pattern: pattern, Flags: flags, Native: native, Cause: err}
		if captured != nil {
			gerr.Cause = captured
		}
		return nil, gerr
	}
	return res, nil
}

func (g *Globber) withStack(ctx context.Context) context.Context {
	if _, ok := capture.FromContext(ctx); ok {
		return ctx
	}
	return capture.WithStack(ctx, capture.NewStack(capture.LogHandler(g.logger)))
}

// Expand returns the brace-free patterns pattern expands to, in the order
// Glob would match them. With Brace unset, or without a well-formed group,
// the pattern comes back unchanged.
func Expand(pattern string, flags Flag) []string {
	e := &expander{
		leaf: func(_ context.Context, p string, _ Flag) ([]string, error) {
			return []string{p}, nil
		},
		logger: logging.Discard(),
	}
	out, _ := e.expand(context.Background(), pattern, flags)
	return out
}

var defaultGlobber = New()

// Glob matches pattern with the default Globber.
func Glob(pattern string, flags Flag, forceFallback bool) ([]string, error) {
	return defaultGlobber.Glob(context.Background(), pattern, flags, forceFallback)
}
