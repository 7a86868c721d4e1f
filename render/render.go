package render

import (
	"bytes"
	"strconv"
	"sync"

	"github.com/termscribe/termscribe/segment"
)

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Serialize renders segs into a single string. With color false the
// result is the segment texts concatenated in order, color annotations
// ignored. With color true each segment's set channels are wrapped in
// SGR escape sequences.
func Serialize(segs []segment.Segment, color bool) string {
	buf := getBuffer()
	AppendSegments(buf, segs, color)
	out := buf.String()
	putBuffer(buf)
	return out
}

// AppendSegments renders segs into buf without going through the
// internal pool.
func AppendSegments(buf *bytes.Buffer, segs []segment.Segment, color bool) {
	if !color {
		for i := range segs {
			buf.WriteString(segs[i].Text)
		}
		return
	}
	for i := range segs {
		appendColored(buf, &segs[i])
	}
}

// appendColored writes one segment with its escape codes. Start codes
// open foreground first, then background; resets close in reverse push
// order so the most recently opened channel is reset first.
func appendColored(buf *bytes.Buffer, seg *segment.Segment) {
	var starts, ends [2]int
	n := 0
	if code, ok := seg.Foreground.ForegroundCode(); ok {
		starts[n] = code
		ends[n] = segment.ResetForeground
		n++
	}
	if code, ok := seg.Background.BackgroundCode(); ok {
		starts[n] = code
		ends[n] = segment.ResetBackground
		n++
	}

	for i := 0; i < n; i++ {
		appendSGR(buf, starts[i])
	}
	buf.WriteString(seg.Text)
	for i := n - 1; i >= 0; i-- {
		appendSGR(buf, ends[i])
	}
}

// appendSGR writes a single escape sequence: ESC '[' code 'm'
func appendSGR(buf *bytes.Buffer, code int) {
	buf.WriteString("\x1b[")
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(code), 10))
	buf.WriteByte('m')
}
