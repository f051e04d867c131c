package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/voicebank/pkg/catalog"
	"github.com/ssargent/voicebank/pkg/datafile"
	"github.com/ssargent/voicebank/pkg/header"
)

// promauto registers on the default registry, so the test process gets
// exactly one Metrics instance.
var testMetrics = NewMetrics()

func setupTestServer(t *testing.T) *Server {
	t.Helper()

	voiceDir := t.TempDir()

	// One valid voice file and one foreign file.
	w, err := datafile.NewWriter(datafile.WriterConfig{
		FilePath: filepath.Join(voiceDir, "voice.units"),
		Type:     header.Units,
	})
	require.NoError(t, err)
	_, err = w.Write([]byte("unit inventory payload"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.NoError(t, os.WriteFile(filepath.Join(voiceDir, "notes.txt"), []byte("plain text, no header"), 0600))

	cat, err := catalog.Open(filepath.Join(t.TempDir(), "catalog"))
	require.NoError(t, err)
	t.Cleanup(func() { cat.Close() })

	config := ServerConfig{
		Port:     8080,
		APIKey:   "test-key",
		VoiceDir: voiceDir,
	}

	return NewServer(cat, config, testMetrics)
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var response APIResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	return response
}

func TestServer_handleHealth(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	server.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.True(t, response.Success)
}

func TestServer_handlePeek(t *testing.T) {
	server := setupTestServer(t)

	t.Run("valid voice file", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/files/peek?path=voice.units", nil)
		w := httptest.NewRecorder()

		server.handlePeek(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		response := decodeResponse(t, w)
		require.True(t, response.Success)

		data, err := json.Marshal(response.Data)
		require.NoError(t, err)
		var peek PeekResponse
		require.NoError(t, json.Unmarshal(data, &peek))

		assert.Equal(t, int32(header.Units), peek.Type)
		assert.Equal(t, "units", peek.TypeName)
		assert.Equal(t, header.FormatVersion, peek.Version)
		assert.True(t, peek.CurrentVersion)
		assert.True(t, peek.KnownType)
	})

	t.Run("missing path parameter", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/files/peek", nil)
		w := httptest.NewRecorder()

		server.handlePeek(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("file not found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/files/peek?path=ghost.units", nil)
		w := httptest.NewRecorder()

		server.handlePeek(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("foreign file", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/files/peek?path=notes.txt", nil)
		w := httptest.NewRecorder()

		server.handlePeek(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		response := decodeResponse(t, w)
		assert.False(t, response.Success)
		assert.Contains(t, response.Error, "Not a voicebank file")
	})

	t.Run("path traversal is confined to the voice dir", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/files/peek?path=..%2F..%2Fetc%2Fpasswd", nil)
		w := httptest.NewRecorder()

		server.handlePeek(w, req)

		// The traversal collapses inside the voice dir, where no such
		// file exists.
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServer_handleScanAndList(t *testing.T) {
	server := setupTestServer(t)

	scanReq := httptest.NewRequest("POST", "/scan", nil)
	scanW := httptest.NewRecorder()
	server.handleScan(scanW, scanReq)

	require.Equal(t, http.StatusOK, scanW.Code)
	response := decodeResponse(t, scanW)
	require.True(t, response.Success)

	data, err := json.Marshal(response.Data)
	require.NoError(t, err)
	var result catalog.ScanResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, 1, result.Indexed)
	assert.Equal(t, 1, result.Skipped)

	listReq := httptest.NewRequest("GET", "/files", nil)
	listW := httptest.NewRecorder()
	server.handleListFiles(listW, listReq)

	require.Equal(t, http.StatusOK, listW.Code)
	listResponse := decodeResponse(t, listW)
	require.True(t, listResponse.Success)

	data, err = json.Marshal(listResponse.Data)
	require.NoError(t, err)
	var entries []catalog.Entry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, header.Units, entries[0].Type)
}

func TestRouter_APIKeyAuth(t *testing.T) {
	server := setupTestServer(t)
	router := Router(server, testMetrics, "secret")

	t.Run("missing key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/health", nil)
		req.Header.Set("X-API-Key", "guess")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("correct key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/health", nil)
		req.Header.Set("X-API-Key", "secret")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("metrics endpoint is unprotected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/metrics", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
