package benchmark

import "github.com/termscribe/termscribe/segment"

// noopProvider discards deliveries; the color flag decides which
// rendering the writer hands it.
type noopProvider struct {
	color bool
}

func newNoopProvider(color bool) *noopProvider {
	return &noopProvider{color: color}
}

func (p *noopProvider) SupportsColor() bool {
	return p.color
}

func (p *noopProvider) Write(text string, _ segment.Severity) error {
	_ = len(text)
	return nil
}
