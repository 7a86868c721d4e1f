package writer

import (
	"github.com/termscribe/termscribe/provider"
	"github.com/termscribe/termscribe/render"
	"github.com/termscribe/termscribe/segment"
)

// serializeSegments is a variable to allow observing serialization in tests
var serializeSegments = render.Serialize

// Writer fans rendered messages out to its registered providers.
type Writer struct {
	providers map[provider.Provider]struct{}
	verbose   bool
}

// New creates a Writer with one initial provider and the given verbose
// setting. A nil provider leaves the registration set empty.
func New(p provider.Provider, verbose bool) *Writer {
	w := &Writer{
		providers: make(map[provider.Provider]struct{}),
		verbose:   verbose,
	}
	if p != nil {
		w.providers[p] = struct{}{}
	}
	return w
}

// Register adds a provider. Registering an already-registered provider
// is a no-op.
func (w *Writer) Register(p provider.Provider) {
	if p != nil {
		w.providers[p] = struct{}{}
	}
}

// Unregister removes a provider. Removing an unregistered provider is
// a no-op.
func (w *Writer) Unregister(p provider.Provider) {
	delete(w.providers, p)
}

// SetVerbose enables or disables the verbose operations.
func (w *Writer) SetVerbose(v bool) {
	w.verbose = v
}

// Verbose reports whether verbose operations deliver output.
func (w *Writer) Verbose() bool {
	return w.verbose
}

// Write delivers the segments followed by one line ending.
func (w *Writer) Write(segs ...segment.Segment) error {
	return w.dispatch(segs, segment.SeverityLog)
}

// WriteLine delivers the segments plus a line-ending segment, so the
// output ends in a blank line.
func (w *Writer) WriteLine(segs ...segment.Segment) error {
	return w.dispatch(withLineEnding(segs), segment.SeverityLog)
}

// WriteWarning delivers the segments with every foreground forced to
// yellow, at warn severity.
func (w *Writer) WriteWarning(segs ...segment.Segment) error {
	return w.dispatch(forceForeground(segs, segment.Yellow, 0), segment.SeverityWarn)
}

// WriteWarningLine is WriteWarning plus a trailing line-ending segment.
func (w *Writer) WriteWarningLine(segs ...segment.Segment) error {
	return w.dispatch(forceForeground(segs, segment.Yellow, 1), segment.SeverityWarn)
}

// WriteError delivers the segments with every foreground forced to
// red, at warn severity.
func (w *Writer) WriteError(segs ...segment.Segment) error {
	return w.dispatch(forceForeground(segs, segment.Red, 0), segment.SeverityWarn)
}

// WriteErrorLine is WriteError plus a trailing line-ending segment.
func (w *Writer) WriteErrorLine(segs ...segment.Segment) error {
	return w.dispatch(forceForeground(segs, segment.Red, 1), segment.SeverityWarn)
}

// WriteVerbose behaves like Write while verbose output is enabled and
// delivers nothing otherwise.
func (w *Writer) WriteVerbose(segs ...segment.Segment) error {
	if !w.verbose {
		return nil
	}
	return w.dispatch(segs, segment.SeverityLog)
}

// WriteVerboseLine behaves like WriteLine while verbose output is
// enabled and delivers nothing otherwise.
func (w *Writer) WriteVerboseLine(segs ...segment.Segment) error {
	if !w.verbose {
		return nil
	}
	return w.dispatch(withLineEnding(segs), segment.SeverityLog)
}

// dispatch serializes the segments at most once per capability class
// and hands the matching rendering to every registered provider. The
// line ending terminating each delivery is appended to the rendering,
// outside any escape codes. The first provider error aborts delivery
// to the providers not yet visited.
func (w *Writer) dispatch(segs []segment.Segment, sev segment.Severity) error {
	var plain, colored string
	var havePlain, haveColored bool

	for p := range w.providers {
		var text string
		if p.SupportsColor() {
			if !haveColored {
				colored = serializeSegments(segs, true) + eol
				haveColored = true
			}
			text = colored
		} else {
			if !havePlain {
				plain = serializeSegments(segs, false) + eol
				havePlain = true
			}
			text = plain
		}
		if err := p.Write(text, sev); err != nil {
			return err
		}
	}
	return nil
}

// withLineEnding copies segs and appends an uncolored line-ending
// segment. Copying keeps caller-supplied slices untouched.
func withLineEnding(segs []segment.Segment) []segment.Segment {
	out := make([]segment.Segment, len(segs)+1)
	copy(out, segs)
	out[len(segs)] = segment.Text(eol)
	return out
}

// forceForeground copies segs with every foreground overwritten to c,
// backgrounds preserved, and appends extra trailing line-ending
// segments.
func forceForeground(segs []segment.Segment, c segment.Color, extra int) []segment.Segment {
	out := make([]segment.Segment, len(segs)+extra)
	for i, s := range segs {
		out[i] = s.WithForeground(c)
	}
	for i := 0; i < extra; i++ {
		out[len(segs)+i] = segment.Text(eol)
	}
	return out
}
