package datafile

import "github.com/ssargent/voicebank/pkg/header"

// WriterConfig holds configuration for a data file writer
type WriterConfig struct {
	FilePath   string          // Path to the data file to create
	Type       header.FileType // Payload category stamped into the header
	BufferSize int             // Write buffer size (0 = bufio default)
}

// ReaderConfig holds configuration for a data file reader
type ReaderConfig struct {
	FilePath string // Path to the data file
}
