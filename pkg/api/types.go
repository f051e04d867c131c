package api

import "github.com/ssargent/voicebank/pkg/catalog"

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// PeekResponse is the body returned for a header peek
type PeekResponse struct {
	Path           string `json:"path"`
	Type           int32  `json:"type"`
	TypeName       string `json:"type_name"`
	Version        int32  `json:"version"`
	CurrentVersion bool   `json:"current_version"`
	KnownType      bool   `json:"known_type"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port     int
	Bind     string
	APIKey   string
	VoiceDir string // Directory peek requests are confined to
}

// ICatalog defines the catalog operations the server depends on
type ICatalog interface {
	List() ([]catalog.Entry, error)
	Scan(dir string) (catalog.ScanResult, error)
}
