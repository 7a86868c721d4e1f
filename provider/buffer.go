package provider

import (
	"strings"

	"github.com/termscribe/termscribe/segment"
)

// Message is one delivery captured by a BufferProvider.
type Message struct {
	Text     string
	Severity segment.Severity
}

// BufferProvider captures deliveries in memory, in arrival order. It is
// the standard test double and doubles as a programmatic capture sink.
type BufferProvider struct {
	color    bool
	messages []Message
}

// NewBufferProvider creates a buffer provider reporting the given color
// capability.
func NewBufferProvider(color bool) *BufferProvider {
	return &BufferProvider{color: color}
}

// SupportsColor reports the capability the provider was created with.
func (p *BufferProvider) SupportsColor() bool {
	return p.color
}

// Write records the delivery.
func (p *BufferProvider) Write(text string, sev segment.Severity) error {
	p.messages = append(p.messages, Message{Text: text, Severity: sev})
	return nil
}

// Messages returns the captured deliveries in arrival order.
func (p *BufferProvider) Messages() []Message {
	return p.messages
}

// Len returns the number of captured deliveries.
func (p *BufferProvider) Len() int {
	return len(p.messages)
}

// String returns the concatenated text of all deliveries.
func (p *BufferProvider) String() string {
	var sb strings.Builder
	for _, m := range p.messages {
		sb.WriteString(m.Text)
	}
	return sb.String()
}

// Reset discards all captured deliveries.
func (p *BufferProvider) Reset() {
	p.messages = p.messages[:0]
}
