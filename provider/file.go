package provider

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/termscribe/termscribe/segment"
)

// FileConfig holds configuration for a file provider
type FileConfig struct {
	// Filename is the path to the transcript file
	Filename string
	// MaxSize is the maximum size in bytes before rotation (0 = no rotation)
	MaxSize int64
	// MaxBackups is the maximum number of rotated files to retain (0 = keep all)
	MaxBackups int
}

// FileProvider appends rendered output to a transcript file. It never
// reports color support, so it always receives the plain rendering.
// Writes are buffered; Flush or Close pushes them to disk.
type FileProvider struct {
	filename    string
	file        *os.File
	bufWriter   *bufio.Writer
	maxSize     int64
	maxBackups  int
	currentSize int64
}

// NewFileProvider opens (or creates) the transcript file in append
// mode.
func NewFileProvider(cfg FileConfig) (*FileProvider, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript file: %w", err)
	}

	var size int64
	if info, err := file.Stat(); err == nil {
		size = info.Size()
	}

	return &FileProvider{
		filename:    cfg.Filename,
		file:        file,
		bufWriter:   bufio.NewWriterSize(file, 4096),
		maxSize:     cfg.MaxSize,
		maxBackups:  cfg.MaxBackups,
		currentSize: size,
	}, nil
}

// SupportsColor always reports false: escape codes do not belong in a
// transcript.
func (p *FileProvider) SupportsColor() bool {
	return false
}

// Write appends text to the transcript. The severity is accepted for
// interface conformance but does not influence the file output.
func (p *FileProvider) Write(text string, _ segment.Severity) error {
	if err := p.rotateIfNeeded(); err != nil {
		return err
	}

	n, err := p.bufWriter.WriteString(text)
	p.currentSize += int64(n)
	return err
}

// rotateIfNeeded checks and performs rotation if needed
func (p *FileProvider) rotateIfNeeded() error {
	if p.maxSize <= 0 || p.currentSize < p.maxSize {
		return nil
	}
	return p.rotate()
}

// rotate flushes and closes the current file, renames it with a
// timestamp suffix, and opens a fresh one.
func (p *FileProvider) rotate() error {
	if err := p.bufWriter.Flush(); err != nil {
		return err
	}
	if err := p.file.Close(); err != nil {
		return err
	}

	timestamp := time.Now().Format("2006-01-02T15-04-05")
	rotatedName := fmt.Sprintf("%s.%s", p.filename, timestamp)

	if err := os.Rename(p.filename, rotatedName); err != nil {
		// If rename fails, try to reopen the original file
		file, openErr := os.OpenFile(p.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if openErr != nil {
			return fmt.Errorf("rotation failed: %v, reopen failed: %v", err, openErr)
		}
		p.file = file
		p.bufWriter.Reset(file)
		return err
	}

	if p.maxBackups > 0 {
		p.cleanupOldBackups()
	}

	file, err := os.OpenFile(p.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	p.file = file
	p.bufWriter.Reset(file)
	p.currentSize = 0
	return nil
}

// cleanupOldBackups removes old rotated files based on MaxBackups
func (p *FileProvider) cleanupOldBackups() {
	dir := filepath.Dir(p.filename)
	base := filepath.Base(p.filename)

	pattern := filepath.Join(dir, base+".*")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return
	}

	var backups []string
	for _, match := range matches {
		if strings.HasPrefix(filepath.Base(match), base+".") {
			backups = append(backups, match)
		}
	}

	// Oldest first
	sort.Slice(backups, func(i, j int) bool {
		infoI, errI := os.Stat(backups[i])
		infoJ, errJ := os.Stat(backups[j])
		if errI != nil || errJ != nil {
			return false
		}
		return infoI.ModTime().Before(infoJ.ModTime())
	})

	if len(backups) > p.maxBackups {
		for _, file := range backups[:len(backups)-p.maxBackups] {
			if err := os.Remove(file); err != nil {
				return
			}
		}
	}
}

// Flush pushes buffered output to the operating system.
func (p *FileProvider) Flush() error {
	return p.bufWriter.Flush()
}

// Close flushes, syncs and closes the transcript file.
func (p *FileProvider) Close() error {
	if p.file == nil {
		return nil
	}

	if err := p.bufWriter.Flush(); err != nil {
		p.file.Close()
		return err
	}
	if err := p.file.Sync(); err != nil {
		p.file.Close()
		return err
	}
	return p.file.Close()
}
