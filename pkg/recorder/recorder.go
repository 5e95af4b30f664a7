// Package recorder turns completed run results into lineage records: it
// diffs each run against its predecessor, hashes and signs it, persists the
// record together with the new chain state and then submits it to the
// external witness on a best-effort basis.
package recorder

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/papercomputeco/lineage/pkg/attest"
	"github.com/papercomputeco/lineage/pkg/delta"
	"github.com/papercomputeco/lineage/pkg/eventstream"
	"github.com/papercomputeco/lineage/pkg/eventstream/nop"
	"github.com/papercomputeco/lineage/pkg/hashchain"
	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/logger"
	"github.com/papercomputeco/lineage/pkg/metrics"
	"github.com/papercomputeco/lineage/pkg/run"
	"github.com/papercomputeco/lineage/pkg/storage"
	"github.com/papercomputeco/lineage/pkg/witness"
	nopwitness "github.com/papercomputeco/lineage/pkg/witness/nop"
)

const (
	// DefaultWitnessTimeout bounds the whole witnessing phase.
	DefaultWitnessTimeout = 30 * time.Second

	publishTimeout = 10 * time.Second
)

// ErrNoDriver is returned when no storage driver is configured.
var ErrNoDriver = errors.New("storage driver is required")

// SignedContent is the value a record's signature covers.
type SignedContent struct {
	Run        *run.Result `json:"run"`
	Delta      delta.Delta `json:"delta"`
	MerkleRoot string      `json:"merkle_root"`
}

// Config is the configuration options for the recorder.
type Config struct {
	// Driver is the storage backend for records and chain state.
	Driver storage.Driver

	// Signer signs records. Defaults to an unkeyed signer.
	Signer *attest.Signer

	// Witness is the optional external witness. Defaults to a disabled one.
	Witness witness.Witness

	// WitnessTimeout bounds the witnessing phase. Defaults to
	// DefaultWitnessTimeout.
	WitnessTimeout time.Duration

	// Publisher receives an event for every persisted record. Defaults to a
	// no-op publisher.
	Publisher eventstream.Publisher

	// Logger is the provided slog logger
	Logger *slog.Logger

	// Metrics is optional.
	Metrics *metrics.Metrics

	// Now is the clock used for record timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Recorder appends one lineage record per run result. It is the single
// writer of its chain: Record calls are serialized.
type Recorder struct {
	mu sync.Mutex

	config *Config
	logger *slog.Logger
}

// New creates a Recorder.
func New(c *Config) (*Recorder, error) {
	if c.Driver == nil {
		return nil, ErrNoDriver
	}
	if c.Signer == nil {
		c.Signer = attest.NewSigner(nil)
	}
	if c.Witness == nil {
		c.Witness = nopwitness.NewWitness()
	}
	if c.WitnessTimeout <= 0 {
		c.WitnessTimeout = DefaultWitnessTimeout
	}
	if c.Publisher == nil {
		c.Publisher = nop.NewPublisher()
	}
	if c.Logger == nil {
		c.Logger = logger.Nop()
	}
	if c.Now == nil {
		c.Now = time.Now
	}

	return &Recorder{
		config: c,
		logger: c.Logger,
	}, nil
}

// Record appends the lineage record of result and returns it.
//
// The record and the new chain state are committed together: on any error
// before or during persistence a *PhaseError is returned and nothing is
// written. Witnessing happens after the commit and never fails the call; its
// outcome is stored as the record's attestation reference.
func (r *Recorder) Record(ctx context.Context, result *run.Result) (*lineage.Record, error) {
	if err := result.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidRun, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.logger.With("run_id", result.RunID)
	phase := func(p Phase) {
		log.Debug("lineage phase", "phase", string(p))
	}
	fail := func(p Phase, err error) error {
		log.Error("lineage recording failed", "phase", string(p), "error", err)
		r.config.Metrics.ObserveRecordFailure(string(p))
		return &PhaseError{Phase: p, Err: err}
	}

	phase(PhaseLoadingState)
	state, err := r.config.Driver.LoadChainState(ctx)
	if err != nil {
		return nil, fail(PhaseLoadingState, err)
	}

	phase(PhaseComputingDelta)
	d := delta.Compute(state.LastRunSnapshot, result)

	phase(PhaseHashing)
	contentHash, err := hashchain.CanonicalHash(result)
	if err != nil {
		return nil, fail(PhaseHashing, err)
	}
	merkleRoot, err := hashchain.MerkleRoot(result.Targets)
	if err != nil {
		return nil, fail(PhaseHashing, err)
	}
	chainHash, err := hashchain.ChainLink(state.LastHash, contentHash)
	if err != nil {
		return nil, fail(PhaseHashing, err)
	}

	phase(PhaseSigning)
	sig, err := r.config.Signer.Sign(SignedContent{Run: result, Delta: d, MerkleRoot: merkleRoot})
	if err != nil {
		return nil, fail(PhaseSigning, err)
	}

	phase(PhasePersisting)
	rec := &lineage.Record{
		ExecutionID:  uuid.NewString(),
		Sequence:     state.LastSequence + 1,
		RunID:        result.RunID,
		Run:          result,
		Timestamp:    r.config.Now().UTC(),
		PreviousHash: state.LastHash,
		CurrentHash:  contentHash,
		ChainHash:    chainHash,
		MerkleRoot:   merkleRoot,
		Delta:        d,
		Signature:    sig,
	}
	next := &lineage.ChainState{
		LastHash:        chainHash,
		LastSequence:    rec.Sequence,
		LastRunSnapshot: result,
	}
	if err := r.config.Driver.Commit(ctx, rec, next); err != nil {
		return nil, fail(PhasePersisting, err)
	}
	r.config.Metrics.ObserveRecord(rec.Sequence)

	log = log.With("execution_id", rec.ExecutionID, "sequence", rec.Sequence)
	log.Info("lineage record persisted",
		"chain_hash", rec.ChainHash,
		"merkle_root", rec.MerkleRoot,
		"added", len(d.AddedTargets),
		"removed", len(d.RemovedTargets),
		"modified", len(d.ModifiedTargets),
	)

	phase(PhaseWitnessing)
	ref := r.witness(ctx, log, rec)

	// The record is durable; its attestation bookkeeping must not be lost to
	// a caller that gave up after the commit.
	if err := r.config.Driver.Attest(context.WithoutCancel(ctx), rec.ExecutionID, ref); err != nil {
		log.Warn("failed to store attestation reference", "error", err)
	} else {
		rec.AttestationReference = ref
	}

	phase(PhaseDone)
	r.publish(ctx, log, rec, result.Summary)

	return rec, nil
}

// witness submits rec and converts the outcome into an attestation reference.
func (r *Recorder) witness(ctx context.Context, log *slog.Logger, rec *lineage.Record) *lineage.AttestationReference {
	wctx, cancel := context.WithTimeout(ctx, r.config.WitnessTimeout)
	defer cancel()

	res := r.config.Witness.Submit(wctx, rec)
	r.config.Metrics.ObserveWitness(string(res.Status))

	ref := &lineage.AttestationReference{
		Status:      lineage.AttestationLocalOnly,
		WitnessedAt: r.config.Now().UTC(),
	}

	switch res.Status {
	case witness.StatusSuccess:
		ref.Status = lineage.AttestationWitnessed
		ref.RemoteID = res.RemoteID
		log.Info("lineage record witnessed", "remote_id", res.RemoteID)

	case witness.StatusSkipped:
		log.Debug("witness disabled, record kept local only")

	default:
		err := res.Err
		if err == nil {
			err = errors.New("witness submission failed")
		}
		ref.Error = err.Error()
		log.Warn("witness submission failed, record kept local only", "error", err)
	}

	return ref
}

// publish emits the record event. Failures are logged and counted only.
func (r *Recorder) publish(ctx context.Context, log *slog.Logger, rec *lineage.Record, summary run.Summary) {
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := eventstream.NewRecordAppendedEvent(rec, summary)
	if err := r.config.Publisher.PublishRecord(pctx, event); err != nil {
		r.config.Metrics.IncrementEventPublishErrors()
		log.Warn("failed to publish record event", "error", err)
	}
}
