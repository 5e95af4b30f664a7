// Package servecmder provides the serve command, which runs the read-only
// lineage API and optionally records runs on a schedule.
package servecmder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/papercomputeco/lineage/api"
	"github.com/papercomputeco/lineage/cmd/lineage/stack"
	"github.com/papercomputeco/lineage/pkg/config"
	"github.com/papercomputeco/lineage/pkg/metrics"
	"github.com/papercomputeco/lineage/pkg/storage"
	"github.com/papercomputeco/lineage/pkg/targets"
)

type serveCommander struct {
	listen          string
	storage         string
	sqlitePath      string
	postgresDSN     string
	cacheSize       uint
	analyzer        string
	concurrency     uint
	timeout         string
	targetsFile     string
	witnessEndpoint string
	eventStream     string

	interval time.Duration

	logger *slog.Logger
}

var serveFlags = []string{
	config.FlagAPIListen,
	config.FlagStorage,
	config.FlagSQLite,
	config.FlagPostgresDSN,
	config.FlagCacheSize,
	config.FlagAnalyzer,
	config.FlagConcurrency,
	config.FlagTimeout,
	config.FlagTargetsFile,
	config.FlagWitnessEndpoint,
	config.FlagEventStream,
}

const serveLongDesc string = `Run the lineage API server.

The API serves the records and chain state read-only, validates the chain
on demand and exposes Prometheus metrics on /metrics.

With --interval the server also analyzes the targets file on that schedule
and appends a record per run, sharing the store with the API.

Examples:
  lineage serve
  lineage serve --listen :9000 --interval 6h`

const serveShortDesc string = "Run the lineage API server"

func NewServeCmd() *cobra.Command {
	cmder := &serveCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := stack.Bootstrap(cmd, serveFlags)
			if err != nil {
				return err
			}

			cmder.logger = stack.NewLogger(cmd)
			return cmder.run(cmd.Context(), settings)
		},
	}

	config.AddStringFlag(cmd, config.Flags, config.FlagAPIListen, &cmder.listen)
	config.AddStringFlag(cmd, config.Flags, config.FlagStorage, &cmder.storage)
	config.AddStringFlag(cmd, config.Flags, config.FlagSQLite, &cmder.sqlitePath)
	config.AddStringFlag(cmd, config.Flags, config.FlagPostgresDSN, &cmder.postgresDSN)
	config.AddUintFlag(cmd, config.Flags, config.FlagCacheSize, &cmder.cacheSize)
	config.AddStringFlag(cmd, config.Flags, config.FlagAnalyzer, &cmder.analyzer)
	config.AddUintFlag(cmd, config.Flags, config.FlagConcurrency, &cmder.concurrency)
	config.AddStringFlag(cmd, config.Flags, config.FlagTimeout, &cmder.timeout)
	config.AddStringFlag(cmd, config.Flags, config.FlagTargetsFile, &cmder.targetsFile)
	config.AddStringFlag(cmd, config.Flags, config.FlagWitnessEndpoint, &cmder.witnessEndpoint)
	config.AddStringFlag(cmd, config.Flags, config.FlagEventStream, &cmder.eventStream)

	cmd.Flags().DurationVar(&cmder.interval, "interval", 0, "Record a run of the targets file at this interval (0 disables scheduling)")

	return cmd
}

func (c *serveCommander) run(ctx context.Context, settings *stack.Settings) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	driver, err := settings.OpenStorage(ctx, c.logger)
	if err != nil {
		return err
	}
	defer driver.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	server := api.NewServer(api.Config{
		ListenAddr: settings.APIListen,
		SigningKey: settings.SigningKey(),
		Gatherer:   reg,
		Logger:     c.logger,
	}, driver)

	// Channel to capture errors from the server goroutine
	errChan := make(chan error, 1)

	go func() {
		if err := server.Run(); err != nil {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	if c.interval > 0 {
		if err := c.schedule(ctx, settings, driver, m); err != nil {
			return errors.Join(err, server.Shutdown())
		}
	}

	select {
	case err := <-errChan:
		return errors.Join(err, server.Shutdown())
	case <-ctx.Done():
		c.logger.Info("shutting down")
		return server.Shutdown()
	}
}

// schedule starts recording a run of the targets file every interval.
func (c *serveCommander) schedule(ctx context.Context, settings *stack.Settings, driver storage.Driver, m *metrics.Metrics) error {
	path, err := settings.TargetsPath()
	if err != nil {
		return err
	}

	pipeline, err := settings.NewPipeline(driver, m, c.logger)
	if err != nil {
		return err
	}

	c.logger.Info("scheduling runs", "interval", c.interval, "targets_file", path)

	go func() {
		defer pipeline.Close()

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			list, err := targets.Load(path)
			if err != nil {
				c.logger.Error("loading targets", "path", path, "error", err)
				continue
			}
			if len(list) == 0 {
				c.logger.Warn("targets file is empty, skipping run", "path", path)
				continue
			}

			_, rec, err := pipeline.Pass(ctx, list)
			if err != nil {
				c.logger.Error("scheduled run failed", "error", err)
				continue
			}
			c.logger.Info("scheduled run recorded",
				"execution_id", rec.ExecutionID,
				"sequence", rec.Sequence,
			)
		}
	}()

	return nil
}
