// Package segment defines the shared types used across the termscribe
// library.
//
// It provides the Segment type, one unit of output text with optional
// foreground and background color annotations, the Color type naming the
// nine ANSI base colors a segment may carry, and the Severity type that
// classifies a write as ordinary output or a warning for sink-side
// routing.
//
// A plain string and a Segment with no colors set are interchangeable:
// Text(s) produces exactly that segment. Colors map onto fixed SGR
// parameters (foreground 30-37 plus 90 for gray, background 40-47 plus
// 100), exposed via ForegroundCode and BackgroundCode so the render
// package can emit escape sequences without owning the table. The zero
// Color value means "unset" and maps to no code at all.
//
// Segments are plain values. Transformations such as WithForeground
// return a modified copy and never touch the original, which lets the
// writer force colors onto caller-supplied segments without surprising
// the caller.
package segment
