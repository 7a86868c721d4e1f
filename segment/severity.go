package segment

import "strings"

// Severity classifies a write for sink-side routing decisions. It is
// deliberately two-valued: the writer's error operations route as
// SeverityWarn, and there are no debug/trace levels. Severity is
// orthogonal to color.
type Severity int8

const (
	// SeverityLog marks ordinary output
	SeverityLog Severity = iota
	// SeverityWarn marks warning and error output
	SeverityWarn
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityLog:
		return "log"
	case SeverityWarn:
		return "warn"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity. Unrecognized input
// parses as SeverityLog.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(s) {
	case "warn", "warning":
		return SeverityWarn
	default:
		return SeverityLog
	}
}
