package header

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Family constants shared by every voicebank data file.
const (
	// Magic spells "MARY" in ASCII and opens every file of the family.
	Magic int32 = 0x4D415259

	// FormatVersion encodes the current revision as major*10+minor (40 = "4.0").
	FormatVersion int32 = 40

	// Size is the encoded header length in bytes.
	Size = 12
)

// Errors surfaced by decoding, validation and peeking.
var (
	ErrTruncatedHeader = errors.New("truncated header")
	ErrBadMagic        = errors.New("bad magic")
	ErrBadType         = errors.New("file type out of range")
	ErrNotVoiceFile    = errors.New("not a voicebank file")
)

// TypeError reports an unauthorized file type passed where a legal one
// is required. It marks a caller bug, not a recoverable I/O condition.
type TypeError struct {
	Type FileType
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("unauthorized file type [%d]", int32(e.Type))
}

// Header is the 12-byte record prepended to every voicebank data file.
// It is immutable once constructed or decoded; validation is a separate
// step from decoding.
type Header struct {
	Magic   int32
	Version int32
	Type    FileType
}

// New returns a header stamped with the current family constants and the
// given payload category. It fails with a *TypeError when the code lies
// outside the authorized range.
func New(t FileType) (*Header, error) {
	if !t.Legal() {
		return nil, &TypeError{Type: t}
	}
	return &Header{Magic: Magic, Version: FormatVersion, Type: t}, nil
}

// Encode writes the header as three big-endian int32s and returns the
// byte count written. The type range is re-checked so a header built
// without New cannot reach disk. I/O errors propagate unchanged.
func (h *Header) Encode(w io.Writer) (int, error) {
	if !h.Type.Legal() {
		return 0, &TypeError{Type: h.Type}
	}

	var buf [Size]byte
	binary.BigEndian.PutUint32(buf[0:4], uint32(h.Magic))
	binary.BigEndian.PutUint32(buf[4:8], uint32(h.Version))
	binary.BigEndian.PutUint32(buf[8:12], uint32(h.Type))

	return w.Write(buf[:])
}

// Decode reads exactly 12 bytes from r and populates a header, advancing
// the reader past the prefix. It does not validate; call Validate (or
// use Read) for that.
func Decode(r io.Reader) (*Header, error) {
	var buf [Size]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: need %d bytes", ErrTruncatedHeader, Size)
		}
		return nil, err
	}
	return DecodeBytes(buf[:])
}

// DecodeBytes decodes a header from the first 12 bytes of data. Field
// values match Decode for identical byte content.
func DecodeBytes(data []byte) (*Header, error) {
	if len(data) < Size {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrTruncatedHeader, Size, len(data))
	}
	return &Header{
		Magic:   int32(binary.BigEndian.Uint32(data[0:4])),
		Version: int32(binary.BigEndian.Uint32(data[4:8])),
		Type:    FileType(binary.BigEndian.Uint32(data[8:12])),
	}, nil
}

// HasLegalMagic reports whether the magic matches the family constant.
func (h *Header) HasLegalMagic() bool {
	return h.Magic == Magic
}

// HasLegalType reports whether the type lies in the authorized range.
func (h *Header) HasLegalType() bool {
	return h.Type.Legal()
}

// CurrentVersion reports whether the file was written at the current
// format revision. An old revision never makes a header invalid; acting
// on a mismatch (e.g. migrating) is the caller's decision.
func (h *Header) CurrentVersion() bool {
	return h.Version == FormatVersion
}

// IsValid reports whether the header belongs to the family: legal magic
// and a type inside the authorized range. Version is deliberately not
// part of validity.
func (h *Header) IsValid() bool {
	return h.HasLegalMagic() && h.HasLegalType()
}

// Validate returns nil for a valid header, or an error naming the first
// offending field and its value. It is a query and never escalates;
// Read does.
func (h *Header) Validate() error {
	if !h.HasLegalMagic() {
		return fmt.Errorf("%w: 0x%08X", ErrBadMagic, uint32(h.Magic))
	}
	if !h.HasLegalType() {
		return fmt.Errorf("%w: %d", ErrBadType, int32(h.Type))
	}
	return nil
}

// Read decodes a header from r and validates it, failing when the bytes
// do not form a header of the family. This is the strict path used when
// opening a data file.
func Read(r io.Reader) (*Header, error) {
	h, err := Decode(r)
	if err != nil {
		return nil, err
	}
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("ill-formed header: %w", err)
	}
	return h, nil
}

// PeekType opens the named file, reads only the 12-byte prefix and
// returns its payload category without touching payload bytes. The file
// is closed on every path. A file that decodes but fails validation is
// reported as ErrNotVoiceFile with the cause attached.
func PeekType(path string) (FileType, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	h, err := Decode(bufio.NewReaderSize(f, Size))
	if err != nil {
		return Unknown, fmt.Errorf("file %q: %w", path, err)
	}
	if err := h.Validate(); err != nil {
		return Unknown, fmt.Errorf("file %q: %w: %v", path, ErrNotVoiceFile, err)
	}
	return h.Type, nil
}
