// Package writer is the public API of termscribe. Most users only need
// to import this package together with segment.
//
// A Writer fans each message out to a set of registered providers. For
// every write call it serializes the segment sequence at most once per
// color-capability class: one ANSI-escaped rendering shared by all
// color-capable providers, one plain rendering shared by the rest. The
// two renderings are memoized per call only; nothing is cached across
// calls.
//
// Eight operations cover the write surface. Write and WriteLine emit
// ordinary output, WriteWarning(Line) and WriteError(Line) force the
// segments yellow respectively red and deliver with warn severity, and
// WriteVerbose(Line) delivers only while the writer's verbose flag is
// on. Every delivery is terminated by the platform line ending; the
// Line variants additionally append a line-ending segment of their own,
// producing a trailing blank line.
//
// A Writer is owned by a single goroutine: registration, the verbose
// flag, and the write operations are not synchronized internally.
// Provider errors are returned to the caller as-is, and an error from
// one provider skips delivery to those not yet visited in that call.
//
// The package also maintains a default Writer wired to a console
// provider, reachable through the top-level functions:
//
//	writer.WriteLine(segment.Text("ready"))
//	writer.WriteErrorLine(segment.Text("connection lost"))
package writer
