// Package catalog maintains a pebble-backed inventory of voicebank data
// files, keyed by path. Entries record what the header said the last time
// the file was scanned; payloads are never read.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/voicebank/pkg/datafile"
	"github.com/ssargent/voicebank/pkg/header"
)

// ErrNotFound is returned when a path has no catalog entry.
var ErrNotFound = errors.New("catalog entry not found")

// Entry describes one voice file known to the catalog.
type Entry struct {
	ID        string          `json:"id"`
	Path      string          `json:"path"`
	Type      header.FileType `json:"type"`
	TypeName  string          `json:"type_name"`
	Version   int32           `json:"version"`
	Size      int64           `json:"size"`
	ScannedAt time.Time       `json:"scanned_at"`
}

// ScanResult summarizes one directory scan.
type ScanResult struct {
	ScanID  string `json:"scan_id"`
	Indexed int    `json:"indexed"`
	Skipped int    `json:"skipped"` // files that are not of the family
	Failed  int    `json:"failed"`  // files that could not be read at all
}

// Catalog is a pebble-backed voice file inventory.
type Catalog struct {
	db *pebble.DB
}

// Open opens (or creates) the catalog database at path.
func Open(path string) (*Catalog, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &Catalog{db: db}, nil
}

// Put stores an entry under its path, assigning an ID if it has none.
func (c *Catalog) Put(entry Entry) error {
	if entry.Path == "" {
		return fmt.Errorf("catalog entry needs a path")
	}
	if entry.ID == "" {
		entry.ID = ksuid.New().String()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return c.db.Set([]byte(entry.Path), data, pebble.NoSync)
}

// Get returns the entry stored for path.
func (c *Catalog) Get(path string) (Entry, error) {
	data, closer, err := c.db.Get([]byte(path))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Entry{}, err
	}
	defer closer.Close()

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// List returns all entries in path order.
func (c *Catalog) List() ([]Entry, error) {
	iter, err := c.db.NewIter(nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var entries []Entry
	for iter.First(); iter.Valid(); iter.Next() {
		var entry Entry
		if err := json.Unmarshal(iter.Value(), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, iter.Error()
}

// Delete removes the entry stored for path, if any.
func (c *Catalog) Delete(path string) error {
	return c.db.Delete([]byte(path), pebble.NoSync)
}

// Scan walks dir, peeks the header of every regular file and indexes the
// ones that belong to the family. Foreign and truncated files are counted
// as skipped, not treated as errors; a directory full of mixed content is
// the normal case.
func (c *Catalog) Scan(dir string) (ScanResult, error) {
	result := ScanResult{ScanID: ksuid.New().String()}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		reader, err := datafile.NewReader(datafile.ReaderConfig{FilePath: path})
		if err != nil {
			if errors.Is(err, header.ErrBadMagic) ||
				errors.Is(err, header.ErrBadType) ||
				errors.Is(err, header.ErrTruncatedHeader) {
				result.Skipped++
				return nil
			}
			result.Failed++
			return nil
		}
		defer reader.Close()

		size, err := reader.Size()
		if err != nil {
			result.Failed++
			return nil
		}

		hdr := reader.Header()
		entry := Entry{
			Path:      path,
			Type:      hdr.Type,
			TypeName:  hdr.Type.String(),
			Version:   hdr.Version,
			Size:      size,
			ScannedAt: time.Now().UTC(),
		}
		if err := c.Put(entry); err != nil {
			return err
		}
		result.Indexed++
		return nil
	})
	if err != nil {
		return result, err
	}
	return result, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}
