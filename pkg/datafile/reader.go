package datafile

import (
	"bufio"
	"fmt"
	"os"

	"github.com/ssargent/voicebank/pkg/header"
)

// Reader opens a data file, checks its header and exposes the payload
// bytes as an io.Reader. A file that fails header validation is rejected
// before any payload is visible.
type Reader struct {
	file   *os.File
	reader *bufio.Reader
	hdr    *header.Header
	config ReaderConfig
}

// NewReader opens the file at config.FilePath and reads its header
// strictly. The file is closed again if the header does not validate.
func NewReader(config ReaderConfig) (*Reader, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(file)
	hdr, err := header.Read(br)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("file %q: %w", config.FilePath, err)
	}

	return &Reader{
		file:   file,
		reader: br,
		hdr:    hdr,
		config: config,
	}, nil
}

// Header returns the validated header.
func (r *Reader) Header() *header.Header {
	return r.hdr
}

// Type returns the payload category recorded in the header.
func (r *Reader) Type() header.FileType {
	return r.hdr.Type
}

// Read reads payload bytes. The header has already been consumed, so the
// first call returns the first payload byte.
func (r *Reader) Read(p []byte) (int, error) {
	return r.reader.Read(p)
}

// Size returns the payload length in bytes.
func (r *Reader) Size() (int64, error) {
	stat, err := r.file.Stat()
	if err != nil {
		return 0, err
	}
	return stat.Size() - header.Size, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
