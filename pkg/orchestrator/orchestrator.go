// Package orchestrator runs an analysis.Analyzer over a set of targets with
// bounded concurrency and aggregates the outcomes into a run.Result.
//
// Every target is isolated: an error, panic or timeout in one job becomes a
// failed TargetResult and never affects sibling jobs. Results keep the input
// order of the targets regardless of completion order.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/papercomputeco/lineage/pkg/analysis"
	"github.com/papercomputeco/lineage/pkg/logger"
	"github.com/papercomputeco/lineage/pkg/metrics"
	"github.com/papercomputeco/lineage/pkg/run"
)

const (
	// DefaultMaxConcurrency is used when MaxConcurrency is left at zero.
	DefaultMaxConcurrency = 4

	// DefaultPerTargetTimeout is used when PerTargetTimeout is left at zero.
	DefaultPerTargetTimeout = 30 * time.Second
)

var (
	// ErrInvalidConcurrency is returned for a negative MaxConcurrency.
	ErrInvalidConcurrency = errors.New("max concurrency must be at least 1")

	// ErrNoAnalyzer is returned when no analyzer is configured.
	ErrNoAnalyzer = errors.New("analyzer is required")

	// ErrDuplicateTarget is returned when a run lists the same target twice.
	ErrDuplicateTarget = errors.New("duplicate target")

	// ErrInvalidTarget is returned for a target id that is not valid UTF-8.
	ErrInvalidTarget = errors.New("target is not valid UTF-8")
)

// Config is the configuration options for the orchestrator.
type Config struct {
	// Analyzer produces the findings for each target.
	Analyzer analysis.Analyzer

	// MaxConcurrency is the maximum number of jobs in flight. Defaults to
	// DefaultMaxConcurrency. A value of 1 runs targets strictly in order.
	MaxConcurrency int

	// PerTargetTimeout bounds each job. Defaults to DefaultPerTargetTimeout.
	PerTargetTimeout time.Duration

	// Logger is the provided slog logger
	Logger *slog.Logger

	// Metrics is optional.
	Metrics *metrics.Metrics
}

// Orchestrator runs analysis jobs over targets.
type Orchestrator struct {
	config *Config
	logger *slog.Logger
}

// New validates c and creates an Orchestrator.
func New(c *Config) (*Orchestrator, error) {
	if c.Analyzer == nil {
		return nil, ErrNoAnalyzer
	}

	if c.MaxConcurrency == 0 {
		c.MaxConcurrency = DefaultMaxConcurrency
	}
	if c.MaxConcurrency < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidConcurrency, c.MaxConcurrency)
	}

	if c.PerTargetTimeout <= 0 {
		c.PerTargetTimeout = DefaultPerTargetTimeout
	}

	if c.Logger == nil {
		c.Logger = logger.Nop()
	}

	return &Orchestrator{
		config: c,
		logger: c.Logger,
	}, nil
}

// Run analyzes every target and returns the aggregate result.
//
// Run only returns an error when the run cannot start at all. Cancelling ctx
// stops the run early: jobs that completed keep their results, jobs that were
// interrupted or never started are reported as failed with the error
// run.ErrCancelled, and the partial result is returned without an error.
func (o *Orchestrator) Run(ctx context.Context, targets []run.Target) (*run.Result, error) {
	if err := checkTargets(targets); err != nil {
		return nil, err
	}

	result := &run.Result{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}

	log := o.logger.With("run_id", result.RunID)
	log.Info("run started",
		"targets", len(targets),
		"max_concurrency", o.config.MaxConcurrency,
		"analyzer", o.config.Analyzer.Name(),
	)

	// Each job writes only its own slot, so completion order cannot change
	// the output order.
	slots := make([]run.TargetResult, len(targets))

	jobs := make(chan int, len(targets))
	for i := range targets {
		jobs <- i
	}
	close(jobs)

	numWorkers := min(o.config.MaxConcurrency, len(targets))
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for id := range numWorkers {
		go func() {
			defer wg.Done()
			o.worker(ctx, log, id, jobs, targets, slots)
		}()
	}
	wg.Wait()

	result.Targets = slots
	result.Summary = run.Summarize(slots)
	o.config.Metrics.ObserveRun()

	if ctx.Err() != nil {
		log.Warn("run cancelled",
			"succeeded", result.Summary.Succeeded,
			"failed", result.Summary.Failed,
		)
	} else {
		log.Info("run finished",
			"succeeded", result.Summary.Succeeded,
			"failed", result.Summary.Failed,
			"duration", time.Since(result.StartedAt),
		)
	}

	return result, nil
}

// worker is the inner worker loop that pulls job indexes until the queue is
// drained. Once ctx is cancelled the remaining jobs are marked cancelled
// without being started.
func (o *Orchestrator) worker(ctx context.Context, log *slog.Logger, id int, jobs <-chan int, targets []run.Target, slots []run.TargetResult) {
	log.Debug("worker started", "worker_id", id)

	for i := range jobs {
		if ctx.Err() != nil {
			slots[i] = cancelled(targets[i], time.Now().UTC(), 0)
			continue
		}
		slots[i] = o.analyze(ctx, log, targets[i])
	}

	log.Debug("worker stopped", "worker_id", id)
}

// outcome is what a single analyzer call produced.
type outcome struct {
	payload map[string]any
	err     error
}

// analyze runs one job under its own timeout. The analyzer runs in its own
// goroutine so that a job ignoring its context still cannot hold the slot
// past the deadline.
func (o *Orchestrator) analyze(ctx context.Context, log *slog.Logger, target run.Target) run.TargetResult {
	started := time.Now().UTC()

	jobCtx, cancel := context.WithTimeout(ctx, o.config.PerTargetTimeout)
	defer cancel()

	ch := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{err: fmt.Errorf("analyzer panic: %v", r)}
			}
		}()
		payload, err := o.config.Analyzer.Analyze(jobCtx, target)
		ch <- outcome{payload: payload, err: err}
	}()

	var out outcome
	select {
	case out = <-ch:
	case <-jobCtx.Done():
		out = outcome{err: jobCtx.Err()}
	}

	elapsed := time.Since(started)
	res := run.TargetResult{
		TargetID:   target,
		StartedAt:  started,
		DurationNs: elapsed.Nanoseconds(),
	}

	switch {
	case out.err == nil:
		res.Status = run.StatusSuccess
		res.Payload = out.payload

	case ctx.Err() != nil:
		res = cancelled(target, started, elapsed)

	case errors.Is(out.err, context.DeadlineExceeded) && jobCtx.Err() != nil:
		res.Status = run.StatusFailed
		res.Error = fmt.Sprintf("timeout after %s", o.config.PerTargetTimeout)

	default:
		res.Status = run.StatusFailed
		res.Error = out.err.Error()
	}

	// Analyzer errors often carry raw tool output, and the result is
	// hashed and signed as JSON.
	res.Error = strings.ToValidUTF8(res.Error, "\uFFFD")

	o.config.Metrics.ObserveTarget(string(res.Status), elapsed)

	if res.Succeeded() {
		log.Debug("target analyzed", "target", target, "duration", elapsed)
	} else {
		log.Warn("target failed", "target", target, "duration", elapsed, "error", res.Error)
	}

	return res
}

func cancelled(target run.Target, started time.Time, elapsed time.Duration) run.TargetResult {
	return run.TargetResult{
		TargetID:   target,
		Status:     run.StatusFailed,
		StartedAt:  started,
		DurationNs: elapsed.Nanoseconds(),
		Error:      run.ErrCancelled,
	}
}

func checkTargets(targets []run.Target) error {
	seen := make(map[run.Target]struct{}, len(targets))
	for _, t := range targets {
		if !utf8.ValidString(string(t)) {
			return fmt.Errorf("%w: %q", ErrInvalidTarget, string(t))
		}
		if _, ok := seen[t]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateTarget, string(t))
		}
		seen[t] = struct{}{}
	}
	return nil
}
