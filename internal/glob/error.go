package glob

import (
	"fmt"

	"github.com/justrnr500/braceglob/internal/platform"
)

// Error reports a failed match.
type Error struct {
	Pattern string
	Flags   Flag
	Native  platform.Flags
	// Cause is the warning captured while the matcher ran, if any.
	Cause error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("glob(%q, %s) failed [%s]", e.Pattern, e.Native, e.Flags)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}
