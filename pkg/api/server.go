// Package api exposes the voicebank catalog and header inspection over
// HTTP.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router builds the chi router for the given server.
func Router(server *Server, metrics *Metrics, apiKey string) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(apiKey)))

		// Health check
		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		// Catalog and header inspection
		r.Get("/files", metrics.InstrumentHandler("GET", "/api/v1/files", server.handleListFiles))
		r.Get("/files/peek", metrics.InstrumentHandler("GET", "/api/v1/files/peek", server.handlePeek))
		r.Post("/scan", metrics.InstrumentHandler("POST", "/api/v1/scan", server.handleScan))
	})

	return r
}

// StartServer starts the HTTP server with all routes configured
func StartServer(catalog ICatalog, config ServerConfig) error {
	metrics := NewMetrics()
	server := NewServer(catalog, config, metrics)
	router := Router(server, metrics, config.APIKey)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting voicebank REST API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)

	return http.ListenAndServe(addr, router)
}
