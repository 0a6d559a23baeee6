package capture

import "context"

type stackKey struct{}

// WithStack returns a context carrying s.
func WithStack(ctx context.Context, s *Stack) context.Context {
	return context.WithValue(ctx, stackKey{}, s)
}

// FromContext returns the stack carried by ctx, if any.
func FromContext(ctx context.Context) (*Stack, bool) {
	s, ok := ctx.Value(stackKey{}).(*Stack)
	return s, ok && s != nil
}

// Raise raises err on the stack carried by ctx. Without a stack the
// signal is dropped.
func Raise(ctx context.Context, sev Severity, err error) {
	if s, ok := FromContext(ctx); ok {
		s.Raise(sev, err)
	}
}
