package provider

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/termscribe/termscribe/segment"
)

// ColorMode controls whether a console provider asks for colored
// renderings.
type ColorMode int

const (
	// ColorAuto detects support from the environment (default)
	ColorAuto ColorMode = iota
	// ColorAlways requests colored renderings unconditionally
	ColorAlways
	// ColorNever requests plain renderings unconditionally
	ColorNever
)

// ConsoleConfig holds configuration for a console provider
type ConsoleConfig struct {
	// Out receives log-severity output (default: color-safe stdout)
	Out io.Writer
	// Err receives warn-severity output (default: color-safe stderr)
	Err io.Writer
	// Color selects the color capability (default: ColorAuto)
	Color ColorMode
}

// ConsoleProvider writes rendered output to a pair of streams, sending
// warn-severity text to the error stream. Color capability is decided
// once at construction.
type ConsoleProvider struct {
	out   io.Writer
	err   io.Writer
	color bool
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Out == nil {
		cfg.Out = colorable.NewColorableStdout()
	}
	if cfg.Err == nil {
		cfg.Err = colorable.NewColorableStderr()
	}
}

// NewConsoleProvider creates a console provider. With ColorAuto the
// provider reports color support only when stdout is an interactive
// terminal, NO_COLOR is unset, and the terminal advertises a color
// profile.
func NewConsoleProvider(cfg ConsoleConfig) *ConsoleProvider {
	applyConsoleDefaults(&cfg)

	var color bool
	switch cfg.Color {
	case ColorAlways:
		color = true
	case ColorNever:
		color = false
	default:
		color = detectColor(os.Stdout)
	}

	return &ConsoleProvider{
		out:   cfg.Out,
		err:   cfg.Err,
		color: color,
	}
}

// detectColor reports whether the given terminal stream can render
// ANSI colors.
func detectColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Piped or redirected output gets the plain rendering.
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}

// SupportsColor reports the capability decided at construction.
func (p *ConsoleProvider) SupportsColor() bool {
	return p.color
}

// Write sends text to the stream matching its severity.
func (p *ConsoleProvider) Write(text string, sev segment.Severity) error {
	w := p.out
	if sev == segment.SeverityWarn {
		w = p.err
	}
	_, err := io.WriteString(w, text)
	return err
}
