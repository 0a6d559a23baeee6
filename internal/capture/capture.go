// Package capture intercepts warnings raised during a call and turns them
// into error values.
//
// A Stack holds nested capture scopes. Starting a scope while another is
// active pushes a new frame; stopping it pops the frame and hands back
// whatever was captured, leaving the outer scope in charge again. Warnings
// raised while no scope is active (or below the active scope's threshold)
// go to the stack's default handler.
package capture

import (
	"fmt"
	"sync"
)

// Severity ranks a raised signal.
type Severity int

const (
	SeverityNotice Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityNotice:
		return "notice"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Warning is a captured signal. Warnings raised within the same scope are
// chained through Previous, most recent first.
type Warning struct {
	Severity Severity
	Err      error
	Previous *Warning
}

func (w *Warning) Error() string {
	return fmt.Sprintf("%s: %v", w.Severity, w.Err)
}

// Unwrap exposes both the raised error and the warning captured before it.
func (w *Warning) Unwrap() []error {
	errs := []error{w.Err}
	if w.Previous != nil {
		errs = append(errs, w.Previous)
	}
	return errs
}

// Handler receives signals nobody captured.
type Handler func(sev Severity, err error)

type frame struct {
	threshold Severity
	captured  *Warning
}

// Stack is a nested set of capture scopes. It is safe for concurrent use,
// but scopes are meant to belong to one call chain; give each chain its own
// Stack (see WithStack).
type Stack struct {
	mu       sync.Mutex
	frames   []*frame
	fallback Handler
}

// NewStack returns an empty stack. Uncaptured signals are passed to
// fallback; a nil fallback discards them.
func NewStack(fallback Handler) *Stack {
	return &Stack{fallback: fallback}
}

// Start opens a scope capturing signals at or above threshold.
// The returned Scope must be stopped; defer scope.Stop() is the usual form.
func (s *Stack) Start(threshold Severity) *Scope {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := &frame{threshold: threshold}
	s.frames = append(s.frames, f)
	return &Scope{stack: s, frame: f}
}

// Stop closes the innermost scope and returns what it captured, or nil.
// With no active scope it is a no-op returning nil.
func (s *Stack) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.frames) == 0 {
		return nil
	}
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	if f.captured == nil {
		return nil
	}
	return f.captured
}

// Reset drops every active scope without reporting their contents.
func (s *Stack) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = nil
}

// Started reports whether any scope is active.
func (s *Stack) Started() bool {
	return s.Level() > 0
}

// Level returns the number of active scopes.
func (s *Stack) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}

// Raise records err in the innermost scope if its severity reaches the
// scope's threshold. Otherwise the default handler gets it.
func (s *Stack) Raise(sev Severity, err error) {
	if err == nil {
		return
	}

	s.mu.Lock()
	if n := len(s.frames); n > 0 && sev >= s.frames[n-1].threshold {
		f := s.frames[n-1]
		f.captured = &Warning{Severity: sev, Err: err, Previous: f.captured}
		s.mu.Unlock()
		return
	}
	fallback := s.fallback
	s.mu.Unlock()

	if fallback != nil {
		fallback(sev, err)
	}
}

// Scope is the guard for one capture region.
type Scope struct {
	stack *Stack
	frame *frame
	once  sync.Once
	err   *Warning
}

// Stop closes the scope and returns the captured warning, or nil.
// Scopes opened after this one and not yet stopped are closed too.
// Calling Stop more than once returns the same result.
func (sc *Scope) Stop() *Warning {
	sc.once.Do(func() {
		s := sc.stack
		s.mu.Lock()
		defer s.mu.Unlock()

		for i := len(s.frames) - 1; i >= 0; i-- {
			if s.frames[i] == sc.frame {
				s.frames = s.frames[:i]
				break
			}
		}
		sc.err = sc.frame.captured
	})
	return sc.err
}
