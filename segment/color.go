package segment

// Color identifies one of the nine named ANSI base colors a segment can
// be decorated with. The zero value NoColor means the channel is unset.
type Color uint8

const (
	// NoColor leaves the terminal's current color untouched.
	NoColor Color = iota
	// Black is ANSI color 0
	Black
	// Red is ANSI color 1
	Red
	// Green is ANSI color 2
	Green
	// Yellow is ANSI color 3
	Yellow
	// Blue is ANSI color 4
	Blue
	// Magenta is ANSI color 5
	Magenta
	// Cyan is ANSI color 6
	Cyan
	// White is ANSI color 7
	White
	// Gray is the bright-black color, widely rendered as gray
	Gray
)

// SGR reset parameters for the two color channels. Emitted after a
// colored segment's text, most recently opened channel first.
const (
	ResetForeground = 39
	ResetBackground = 49
)

// foreground SGR codes indexed by Color; 0 means no mapping
var foregroundCodes = [...]int{
	Black:   30,
	Red:     31,
	Green:   32,
	Yellow:  33,
	Blue:    34,
	Magenta: 35,
	Cyan:    36,
	White:   37,
	Gray:    90,
}

// background SGR codes indexed by Color; 0 means no mapping
var backgroundCodes = [...]int{
	Black:   40,
	Red:     41,
	Green:   42,
	Yellow:  43,
	Blue:    44,
	Magenta: 45,
	Cyan:    46,
	White:   47,
	Gray:    100,
}

// ForegroundCode returns the SGR parameter that selects c as the
// foreground color. The second return is false when c is NoColor or not
// one of the nine named colors; such a channel contributes no escape
// codes.
func (c Color) ForegroundCode() (int, bool) {
	if int(c) >= len(foregroundCodes) {
		return 0, false
	}
	code := foregroundCodes[c]
	return code, code != 0
}

// BackgroundCode returns the SGR parameter that selects c as the
// background color, with the same unset/unknown semantics as
// ForegroundCode.
func (c Color) BackgroundCode() (int, bool) {
	if int(c) >= len(backgroundCodes) {
		return 0, false
	}
	code := backgroundCodes[c]
	return code, code != 0
}

// String returns the color's name
func (c Color) String() string {
	switch c {
	case NoColor:
		return "none"
	case Black:
		return "black"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case Cyan:
		return "cyan"
	case White:
		return "white"
	case Gray:
		return "gray"
	default:
		return "unknown"
	}
}
