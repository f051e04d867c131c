// Package header implements the 12-byte file header shared by every
// voicebank data file (unit inventories, decision trees, feature tables,
// timelines). The header lets a reader confirm a file belongs to the
// family, discover its payload category, and learn its format revision
// without touching a single payload byte.
//
// # Header Format
//
// Headers are serialized in a fixed binary layout:
//
//	[Magic(4)][Version(4)][Type(4)]
//
// Fields:
//   - Magic: 32-bit constant 0x4D415259 ("MARY"), big-endian
//   - Version: 32-bit format revision, major*10+minor (40 = "4.0"), big-endian
//   - Type: 32-bit payload category code, big-endian
//
// The total header size is always 12 bytes. There is no padding, no
// length prefix and no checksum; the payload that follows is opaque to
// this package.
//
// # Decoding And Validation
//
// Decoding and validation are separate steps. Decode and DecodeBytes only
// populate fields; Validate classifies the result. Read combines the two
// and is the strict path used when opening a data file. PeekType opens a
// file, checks just the header prefix and reports the payload category.
//
// Validation accepts any type code inside the authorized range
// (Unknown, Timeline], including codes no named constant claims. Files
// written by newer tools may carry categories this build does not know;
// rejecting them would break every older reader in the family. Callers
// that want strict membership can ask FileType.Known.
//
// # Error Handling
//
// Construction and serialization reject out-of-range type codes with a
// *TypeError, which marks a caller bug rather than a recoverable I/O
// condition. Decoding fails with ErrTruncatedHeader on short input.
// Validation failures surface as ErrBadMagic or ErrBadType carrying the
// offending value, and PeekType folds them into ErrNotVoiceFile.
//
// # Thread Safety
//
// A Header is immutable after construction or decoding and safe to share
// between goroutines. The package-level functions keep no state.
package header
