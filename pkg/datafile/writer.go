// Package datafile reads and writes voicebank data files: a 12-byte
// family header followed by opaque payload bytes. The payload format
// belongs to the category's own codec; this package never interprets it.
package datafile

import (
	"bufio"
	"os"
	"path/filepath"
	"sync"

	"github.com/ssargent/voicebank/pkg/header"
)

// Writer creates a data file and stamps the family header before any
// payload bytes are accepted.
type Writer struct {
	file   *os.File
	writer *bufio.Writer
	hdr    *header.Header
	config WriterConfig
	mutex  sync.Mutex
	offset int64
}

// NewWriter creates the file at config.FilePath, truncating any previous
// content, and writes the header for config.Type. An out-of-range type
// fails before the filesystem is touched.
func NewWriter(config WriterConfig) (*Writer, error) {
	hdr, err := header.New(config.Type)
	if err != nil {
		return nil, err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0750); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, err
	}

	bufSize := config.BufferSize
	if bufSize <= 0 {
		bufSize = 4096
	}
	bw := bufio.NewWriterSize(file, bufSize)

	n, err := hdr.Encode(bw)
	if err != nil {
		file.Close()
		return nil, err
	}

	return &Writer{
		file:   file,
		writer: bw,
		hdr:    hdr,
		config: config,
		offset: int64(n),
	}, nil
}

// Write appends payload bytes after the header.
func (w *Writer) Write(p []byte) (int, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	n, err := w.writer.Write(p)
	w.offset += int64(n)
	return n, err
}

// Header returns the header stamped into the file.
func (w *Writer) Header() *header.Header {
	return w.hdr
}

// Offset returns the number of bytes written so far, header included.
func (w *Writer) Offset() int64 {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.offset
}

// Sync flushes the buffer and fsyncs the file.
func (w *Writer) Sync() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.sync()
}

func (w *Writer) sync() error {
	if err := w.writer.Flush(); err != nil {
		return err
	}
	return w.file.Sync()
}

// Close flushes, syncs and closes the file.
func (w *Writer) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if err := w.sync(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
