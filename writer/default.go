package writer

import (
	"sync"

	"github.com/termscribe/termscribe/provider"
	"github.com/termscribe/termscribe/segment"
)

var (
	defaultWriter *Writer
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default writer with a console provider
	defaultWriter = New(provider.NewConsoleProvider(provider.ConsoleConfig{}), false)
}

// Default returns the default writer
func Default() *Writer {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultWriter
}

// SetDefault sets the default writer
func SetDefault(w *Writer) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultWriter = w
}

// Package-level convenience functions using the default writer

// Write delivers segments using the default writer
func Write(segs ...segment.Segment) error {
	return Default().Write(segs...)
}

// WriteLine delivers segments plus a blank line using the default writer
func WriteLine(segs ...segment.Segment) error {
	return Default().WriteLine(segs...)
}

// WriteWarning delivers yellow warn-severity output using the default writer
func WriteWarning(segs ...segment.Segment) error {
	return Default().WriteWarning(segs...)
}

// WriteWarningLine delivers yellow warn-severity output plus a blank line
// using the default writer
func WriteWarningLine(segs ...segment.Segment) error {
	return Default().WriteWarningLine(segs...)
}

// WriteError delivers red warn-severity output using the default writer
func WriteError(segs ...segment.Segment) error {
	return Default().WriteError(segs...)
}

// WriteErrorLine delivers red warn-severity output plus a blank line using
// the default writer
func WriteErrorLine(segs ...segment.Segment) error {
	return Default().WriteErrorLine(segs...)
}

// WriteVerbose delivers segments using the default writer when verbose
// output is enabled
func WriteVerbose(segs ...segment.Segment) error {
	return Default().WriteVerbose(segs...)
}

// WriteVerboseLine delivers segments plus a blank line using the default
// writer when verbose output is enabled
func WriteVerboseLine(segs ...segment.Segment) error {
	return Default().WriteVerboseLine(segs...)
}

// Register adds a provider to the default writer
func Register(p provider.Provider) {
	Default().Register(p)
}

// Unregister removes a provider from the default writer
func Unregister(p provider.Provider) {
	Default().Unregister(p)
}

// SetVerbose toggles verbose output on the default writer
func SetVerbose(v bool) {
	Default().SetVerbose(v)
}
