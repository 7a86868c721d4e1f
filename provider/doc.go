// Package provider defines the Provider interface and its built-in
// implementations for receiving rendered output from a writer.
//
// A Provider declares once, via SupportsColor, whether it wants the
// ANSI-escaped rendering or the plain one, and accepts finished strings
// together with a severity tag through Write. The writer owns nothing
// about a provider beyond its registration; rendering, buffering, and
// persistence are entirely the provider's business.
//
// Built-in providers:
//
//   - ConsoleProvider writes to stdout/stderr, detecting color support
//     from the environment (NO_COLOR, TTY status, terminal profile) and
//     routing warn-severity output to stderr.
//   - BufferProvider captures output in memory, mainly for tests and
//     programmatic inspection.
//   - FileProvider appends the plain rendering to a transcript file
//     with optional size-based rotation.
//
// All providers are synchronous: Write has completed its I/O when it
// returns, and any error surfaces directly to the caller of the write
// operation that produced the text.
package provider
