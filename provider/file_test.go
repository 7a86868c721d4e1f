package provider

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/termscribe/termscribe/segment"
)

func TestFileProvider_WriteAndFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.txt")
	p, err := NewFileProvider(FileConfig{Filename: path})
	if err != nil {
		t.Fatalf("NewFileProvider() error = %v", err)
	}
	defer p.Close()

	if p.SupportsColor() {
		t.Errorf("file provider must not report color support")
	}

	if err := p.Write("first line\n", segment.SeverityLog); err != nil {
		t.Errorf("Write() error = %v", err)
	}
	if err := p.Write("second line\n", segment.SeverityWarn); err != nil {
		t.Errorf("Write() error = %v", err)
	}
	if err := p.Flush(); err != nil {
		t.Errorf("Flush() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "first line\nsecond line\n" {
		t.Errorf("file content = %q", string(data))
	}
}

func TestFileProvider_AppendsToExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.txt")
	if err := os.WriteFile(path, []byte("old\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	p, err := NewFileProvider(FileConfig{Filename: path})
	if err != nil {
		t.Fatalf("NewFileProvider() error = %v", err)
	}
	p.Write("new\n", segment.SeverityLog)
	if err := p.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "old\nnew\n" {
		t.Errorf("file content = %q, want %q", string(data), "old\nnew\n")
	}
}

func TestFileProvider_RotatesBySize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transcript.txt")

	p, err := NewFileProvider(FileConfig{Filename: path, MaxSize: 10})
	if err != nil {
		t.Fatalf("NewFileProvider() error = %v", err)
	}
	defer p.Close()

	// Push past MaxSize, then write again to trigger rotation.
	p.Write("0123456789AB", segment.SeverityLog)
	p.Write("after\n", segment.SeverityLog)
	p.Flush()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	rotated := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "transcript.txt.") {
			rotated++
		}
	}
	if rotated != 1 {
		t.Errorf("rotated files = %d, want 1", rotated)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "after\n" {
		t.Errorf("current file content = %q, want %q", string(data), "after\n")
	}
}

func TestFileProvider_RequiresFilename(t *testing.T) {
	if _, err := NewFileProvider(FileConfig{}); err == nil {
		t.Errorf("expected error for empty filename")
	}
}
