package capture

import "github.com/charmbracelet/log"

// LogHandler returns a Handler that writes uncaptured signals to l.
func LogHandler(l *log.Logger) Handler {
	return func(sev Severity, err error) {
		switch sev {
		case SeverityError:
			l.Error("uncaptured signal", "err", err)
		case SeverityWarning:
			l.Warn("uncaptured signal", "err", err)
		default:
			l.Debug("uncaptured signal", "severity", sev, "err", err)
		}
	}
}
