package segment

// Segment is one unit of output text with optional color annotations.
// A Segment with both colors unset is equivalent to its bare Text.
type Segment struct {
	Text       string
	Foreground Color
	Background Color
}

// Text returns an uncolored segment carrying s.
func Text(s string) Segment {
	return Segment{Text: s}
}

// Colored returns a segment carrying s with the given foreground color.
func Colored(s string, fg Color) Segment {
	return Segment{Text: s, Foreground: fg}
}

// Styled returns a segment carrying s with both channels set.
func Styled(s string, fg, bg Color) Segment {
	return Segment{Text: s, Foreground: fg, Background: bg}
}

// WithForeground returns a copy of the segment with the foreground
// overwritten to c. Any background color is preserved. The receiver is
// not modified, so callers' segments survive the writer's warning and
// error recoloring untouched.
func (s Segment) WithForeground(c Color) Segment {
	s.Foreground = c
	return s
}
