package benchmark

import (
	"testing"

	"github.com/termscribe/termscribe/render"
	"github.com/termscribe/termscribe/segment"
	"github.com/termscribe/termscribe/writer"
)

var sinkString string

func plainSegments(n int) []segment.Segment {
	segs := make([]segment.Segment, n)
	for i := range segs {
		segs[i] = segment.Text("segment text ")
	}
	return segs
}

func coloredSegments(n int) []segment.Segment {
	segs := make([]segment.Segment, n)
	for i := range segs {
		segs[i] = segment.Styled("segment text ", segment.Yellow, segment.Blue)
	}
	return segs
}

// Benchmark serialization in both modes
func BenchmarkSerialize_Plain(b *testing.B) {
	segs := plainSegments(4)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkString = render.Serialize(segs, false)
	}
}

func BenchmarkSerialize_Colored(b *testing.B) {
	segs := coloredSegments(4)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkString = render.Serialize(segs, true)
	}
}

func BenchmarkSerialize_ColoredLong(b *testing.B) {
	segs := coloredSegments(32)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkString = render.Serialize(segs, true)
	}
}

// Benchmark the full dispatch path with varying fan-out
func BenchmarkWrite_SingleProvider(b *testing.B) {
	w := writer.New(newNoopProvider(false), false)
	segs := plainSegments(4)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.Write(segs...)
	}
}

func BenchmarkWrite_MixedCapabilities(b *testing.B) {
	w := writer.New(newNoopProvider(true), false)
	w.Register(newNoopProvider(false))
	segs := coloredSegments(4)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.Write(segs...)
	}
}

func BenchmarkWrite_EightProviders(b *testing.B) {
	w := writer.New(nil, false)
	for i := 0; i < 8; i++ {
		w.Register(newNoopProvider(i%2 == 0))
	}
	segs := coloredSegments(4)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.Write(segs...)
	}
}

// Benchmark the warning path, which recolors every segment
func BenchmarkWriteWarning(b *testing.B) {
	w := writer.New(newNoopProvider(true), false)
	segs := coloredSegments(4)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.WriteWarning(segs...)
	}
}

// Benchmark the disabled verbose gate, which should cost next to nothing
func BenchmarkWriteVerbose_Disabled(b *testing.B) {
	w := writer.New(newNoopProvider(false), false)
	segs := plainSegments(4)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		w.WriteVerbose(segs...)
	}
}
