package api

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/ssargent/voicebank/pkg/datafile"
	"github.com/ssargent/voicebank/pkg/header"
)

// Server holds the API server state
type Server struct {
	catalog ICatalog
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(catalog ICatalog, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		catalog: catalog,
		config:  config,
		metrics: metrics,
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleListFiles returns every catalog entry.
func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {
	entries, err := s.catalog.List()
	if err != nil {
		sendError(w, fmt.Sprintf("Failed to list catalog: %v", err), http.StatusInternalServerError)
		return
	}

	s.metrics.UpdateCatalogSize(len(entries))
	sendSuccess(w, entries)
}

// handlePeek inspects the header of one file under the voice directory
// without reading its payload.
func (s *Server) handlePeek(w http.ResponseWriter, r *http.Request) {
	rel := r.URL.Query().Get("path")
	if rel == "" {
		sendError(w, "Query parameter 'path' is required", http.StatusBadRequest)
		return
	}

	// Confine the request to the voice directory.
	path := filepath.Join(s.config.VoiceDir, filepath.Clean("/"+rel))

	reader, err := datafile.NewReader(datafile.ReaderConfig{FilePath: path})
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			s.metrics.RecordPeek("missing", false)
			sendError(w, fmt.Sprintf("File not found: %s", rel), http.StatusNotFound)
		case errors.Is(err, header.ErrBadMagic), errors.Is(err, header.ErrBadType),
			errors.Is(err, header.ErrTruncatedHeader):
			s.metrics.RecordPeek("invalid", false)
			sendError(w, fmt.Sprintf("Not a voicebank file: %v", err), http.StatusUnprocessableEntity)
		default:
			s.metrics.RecordPeek("invalid", false)
			sendError(w, fmt.Sprintf("Failed to read header: %v", err), http.StatusInternalServerError)
		}
		return
	}
	defer reader.Close()

	hdr := reader.Header()
	s.metrics.RecordPeek(hdr.Type.String(), true)

	sendSuccess(w, PeekResponse{
		Path:           rel,
		Type:           int32(hdr.Type),
		TypeName:       hdr.Type.String(),
		Version:        hdr.Version,
		CurrentVersion: hdr.CurrentVersion(),
		KnownType:      hdr.Type.Known(),
	})
}

// handleScan rescans the voice directory into the catalog.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	result, err := s.catalog.Scan(s.config.VoiceDir)
	if err != nil {
		s.metrics.RecordScan(false, time.Since(start))
		sendError(w, fmt.Sprintf("Scan failed: %v", err), http.StatusInternalServerError)
		return
	}
	s.metrics.RecordScan(true, time.Since(start))

	if entries, err := s.catalog.List(); err == nil {
		s.metrics.UpdateCatalogSize(len(entries))
	}

	sendSuccess(w, result)
}
