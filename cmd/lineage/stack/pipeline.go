package stack

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/papercomputeco/lineage/pkg/eventstream"
	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/metrics"
	"github.com/papercomputeco/lineage/pkg/orchestrator"
	"github.com/papercomputeco/lineage/pkg/recorder"
	"github.com/papercomputeco/lineage/pkg/run"
	"github.com/papercomputeco/lineage/pkg/storage"
)

// recordTimeout bounds storage and publishing of one pass. The witness
// budget is added on top.
const recordTimeout = 30 * time.Second

// Pipeline runs orchestration passes and appends one record per pass.
type Pipeline struct {
	Orchestrator *orchestrator.Orchestrator
	Recorder     *recorder.Recorder

	publisher     eventstream.Publisher
	recordTimeout time.Duration
}

// NewPipeline builds the orchestrator and recorder for driver. Metrics may
// be nil. Close releases the event publisher; the driver stays open.
func (s *Settings) NewPipeline(driver storage.Driver, m *metrics.Metrics, log *slog.Logger) (*Pipeline, error) {
	analyzer, err := s.NewAnalyzer()
	if err != nil {
		return nil, err
	}

	orch, err := orchestrator.New(&orchestrator.Config{
		Analyzer:         analyzer,
		MaxConcurrency:   s.MaxConcurrency,
		PerTargetTimeout: s.PerTargetTimeout,
		Logger:           log,
		Metrics:          m,
	})
	if err != nil {
		return nil, fmt.Errorf("creating orchestrator: %w", err)
	}

	w, witnessTimeout, err := s.NewWitness(log)
	if err != nil {
		return nil, fmt.Errorf("creating witness: %w", err)
	}

	pub, err := s.NewPublisher(log)
	if err != nil {
		return nil, fmt.Errorf("creating event publisher: %w", err)
	}

	rec, err := recorder.New(&recorder.Config{
		Driver:         driver,
		Signer:         s.NewSigner(log),
		Witness:        w,
		WitnessTimeout: witnessTimeout,
		Publisher:      pub,
		Logger:         log,
		Metrics:        m,
	})
	if err != nil {
		pub.Close()
		return nil, fmt.Errorf("creating recorder: %w", err)
	}

	return &Pipeline{
		Orchestrator:  orch,
		Recorder:      rec,
		publisher:     pub,
		recordTimeout: recordTimeout + witnessTimeout,
	}, nil
}

// Pass analyzes targets and records the result. The run result is returned
// even when recording fails.
func (p *Pipeline) Pass(ctx context.Context, targets []run.Target) (*run.Result, *lineage.Record, error) {
	result, err := p.Orchestrator.Run(ctx, targets)
	if err != nil {
		return nil, nil, err
	}

	rec, err := p.Record(ctx, result)
	if err != nil {
		return result, nil, err
	}

	return result, rec, nil
}

// Record appends result to the chain. A cancelled ctx stops the analysis but
// the partial result is still recorded, so recording runs detached from ctx
// under its own deadline.
func (p *Pipeline) Record(ctx context.Context, result *run.Result) (*lineage.Record, error) {
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.recordTimeout)
	defer cancel()

	return p.Recorder.Record(recordCtx, result)
}

// Close releases the event publisher.
func (p *Pipeline) Close() error {
	return p.publisher.Close()
}
