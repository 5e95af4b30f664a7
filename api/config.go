// Package api provides an HTTP API server for inspecting the lineage chain.
package api

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Config is the API server configuration.
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":8090")
	ListenAddr string

	// SigningKey verifies record signatures on /records/:id/verify. When
	// empty, HMAC signatures verify as invalid and timestamp signatures as
	// undecidable.
	SigningKey []byte

	// Gatherer backs the /metrics endpoint. Defaults to
	// prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// Logger is the provided slog logger
	Logger *slog.Logger
}
