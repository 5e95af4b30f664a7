package api

import (
	"log/slog"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/papercomputeco/lineage/pkg/logger"
	"github.com/papercomputeco/lineage/pkg/storage"
)

// Server is the API server for inspecting the lineage chain. It only reads
// from the store.
type Server struct {
	config Config
	driver storage.Driver
	logger *slog.Logger
	app    *fiber.App
}

// NewServer creates a new API server over driver.
// The driver is injected to allow sharing with a recorder in the same process.
func NewServer(config Config, driver storage.Driver) *Server {
	if config.Logger == nil {
		config.Logger = logger.Nop()
	}
	if config.Gatherer == nil {
		config.Gatherer = prometheus.DefaultGatherer
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config: config,
		driver: driver,
		logger: config.Logger,
		app:    app,
	}

	app.Get("/ping", s.handlePing)
	app.Get("/records", s.handleListRecords)
	app.Get("/records/:id", s.handleGetRecord)
	app.Get("/records/:id/verify", s.handleVerifyRecord)
	app.Get("/chain/state", s.handleChainState)
	app.Get("/chain/validate", s.handleValidateChain)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(config.Gatherer, promhttp.HandlerOpts{})))

	return s
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server", "listen", s.config.ListenAddr)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
