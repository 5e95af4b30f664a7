// Package runcmder provides the run command, which analyzes targets and
// appends the outcome to the lineage chain.
package runcmder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/lineage/cmd/lineage/render"
	"github.com/papercomputeco/lineage/cmd/lineage/stack"
	"github.com/papercomputeco/lineage/pkg/cliui"
	"github.com/papercomputeco/lineage/pkg/config"
	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/run"
	"github.com/papercomputeco/lineage/pkg/targets"
)

// ErrNoTargets is returned when neither arguments nor a targets file name
// anything to analyze.
var ErrNoTargets = errors.New("no targets: pass owner/name arguments or a --targets-file")

type runCommander struct {
	flags config.FlagSet

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

	watch    bool
	interval time.Duration
	asJSON   bool

	out    io.Writer
	logger *slog.Logger
}

var runFlags = []string{
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

const runLongDesc string = `Analyze targets and append the result to the lineage chain.

Targets are repositories given as owner/name arguments and/or listed in a
YAML targets file. Every target is analyzed concurrently with its own
timeout; failures are recorded, never fatal. The run is then diffed against
the previous one, hashed, signed and persisted as one record.

With --watch the command keeps running and records a new run whenever the
targets file changes, and every --interval if one is given. Watch mode also
appends JSON logs to run.log in the .lineage directory.

Examples:
  lineage run octocat/hello-world golang/go
  lineage run --targets-file targets.yaml --concurrency 8
  lineage run --watch --interval 1h`

const runShortDesc string = "Analyze targets and append a lineage record"

func NewRunCmd() *cobra.Command {
	cmder := &runCommander{
		flags: config.Flags,
	}

	cmd := &cobra.Command{
		Use:   "run [targets...]",
		Short: runShortDesc,
		Long:  runLongDesc,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := stack.Bootstrap(cmd, runFlags)
			if err != nil {
				return err
			}

			cmder.out = cmd.OutOrStdout()
			cmder.logger = stack.NewLogger(cmd)
			if cmder.watch {
				log, closer, err := stack.NewRunLogger(cmd, settings.ConfigDir)
				if err != nil {
					return err
				}
				defer closer.Close()
				cmder.logger = log
			}

			explicitFile := cmd.Flags().Changed(config.Flags[config.FlagTargetsFile].Name)
			return cmder.run(cmd.Context(), settings, args, explicitFile)
		},
	}

	config.AddStringFlag(cmd, cmder.flags, config.FlagStorage, &cmder.storage)
	config.AddStringFlag(cmd, cmder.flags, config.FlagSQLite, &cmder.sqlitePath)
	config.AddStringFlag(cmd, cmder.flags, config.FlagPostgresDSN, &cmder.postgresDSN)
	config.AddUintFlag(cmd, cmder.flags, config.FlagCacheSize, &cmder.cacheSize)
	config.AddStringFlag(cmd, cmder.flags, config.FlagAnalyzer, &cmder.analyzer)
	config.AddUintFlag(cmd, cmder.flags, config.FlagConcurrency, &cmder.concurrency)
	config.AddStringFlag(cmd, cmder.flags, config.FlagTimeout, &cmder.timeout)
	config.AddStringFlag(cmd, cmder.flags, config.FlagTargetsFile, &cmder.targetsFile)
	config.AddStringFlag(cmd, cmder.flags, config.FlagWitnessEndpoint, &cmder.witnessEndpoint)
	config.AddStringFlag(cmd, cmder.flags, config.FlagEventStream, &cmder.eventStream)

	cmd.Flags().BoolVarP(&cmder.watch, "watch", "w", false, "Keep running and record again when the targets file changes")
	cmd.Flags().DurationVar(&cmder.interval, "interval", 0, "With --watch, also record a run at this interval")
	cmd.Flags().BoolVar(&cmder.asJSON, "json", false, "Print the appended record as JSON")

	return cmd
}

func (c *runCommander) run(ctx context.Context, settings *stack.Settings, args []string, explicitFile bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	targetsPath, err := settings.TargetsPath()
	if err != nil {
		return err
	}

	// Resolve the targets before opening anything so a bad invocation fails
	// fast.
	if _, err := c.loadTargets(targetsPath, args, explicitFile); err != nil {
		return err
	}

	driver, err := settings.OpenStorage(ctx, c.logger)
	if err != nil {
		return err
	}
	defer driver.Close()

	pipeline, err := settings.NewPipeline(driver, nil, c.logger)
	if err != nil {
		return err
	}
	defer pipeline.Close()

	pass := func() error {
		list, err := c.loadTargets(targetsPath, args, explicitFile)
		if err != nil {
			return err
		}
		return c.pass(ctx, pipeline, list)
	}

	if err := pass(); err != nil {
		return err
	}

	if !c.watch {
		return nil
	}

	c.logger.Info("watching for changes", "targets_file", targetsPath, "interval", c.interval)

	return watchTargets(ctx, targetsPath, c.interval, defaultDebounce, func() {
		if err := pass(); err != nil {
			c.logger.Error("run failed", "error", err)
		}
	})
}

// loadTargets merges the argument targets with the targets file. A missing
// file is only an error when it was asked for explicitly or when there are
// no argument targets either.
func (c *runCommander) loadTargets(path string, args []string, explicitFile bool) ([]run.Target, error) {
	fromArgs := targets.FromArgs(args)

	var fromFile []run.Target
	if path != "" {
		list, err := targets.Load(path)
		switch {
		case err == nil:
			fromFile = list
		case errors.Is(err, os.ErrNotExist) && !explicitFile:
			c.logger.Debug("no targets file", "path", path)
		default:
			return nil, err
		}
	}

	list := targets.Merge(fromArgs, fromFile)
	if len(list) == 0 {
		return nil, ErrNoTargets
	}
	return list, nil
}

// pass runs the pipeline once and prints the outcome.
func (c *runCommander) pass(ctx context.Context, pipeline *stack.Pipeline, list []run.Target) error {
	var (
		result *run.Result
		rec    *lineage.Record
	)

	err := cliui.Step(c.out, fmt.Sprintf("Analyzing %d targets", len(list)), func() error {
		var err error
		result, err = pipeline.Orchestrator.Run(ctx, list)
		return err
	})
	if err != nil {
		return err
	}

	err = cliui.Step(c.out, "Appending lineage record", func() error {
		var err error
		rec, err = pipeline.Record(ctx, result)
		return err
	})
	if err != nil {
		return err
	}

	if c.asJSON {
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	render.Header(c.out, "Targets")
	render.Result(c.out, result)
	render.Header(c.out, "Record")
	render.Record(c.out, rec)
	if !rec.Delta.IsEmpty() {
		render.Header(c.out, "Changes")
		render.Delta(c.out, rec.Delta)
	}
	fmt.Fprintln(c.out)

	return nil
}
