package provider

import "github.com/termscribe/termscribe/segment"

// Provider is a sink for rendered output.
type Provider interface {
	// SupportsColor reports whether the provider wants ANSI-escaped
	// renderings. The writer treats this as a stable capability.
	SupportsColor() bool

	// Write accepts a finished rendering together with its severity.
	Write(text string, sev segment.Severity) error
}
