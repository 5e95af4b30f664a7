package recorder_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/lineage/pkg/attest"
	"github.com/papercomputeco/lineage/pkg/delta"
	"github.com/papercomputeco/lineage/pkg/eventstream"
	"github.com/papercomputeco/lineage/pkg/hashchain"
	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/recorder"
	"github.com/papercomputeco/lineage/pkg/run"
	"github.com/papercomputeco/lineage/pkg/storage"
	"github.com/papercomputeco/lineage/pkg/storage/inmemory"
	"github.com/papercomputeco/lineage/pkg/witness"
)

var signingKey = []byte("test-signing-key")

type target struct {
	id      run.Target
	payload map[string]any
	err     string
}

// newRun builds a valid run result with the targets in the given order.
func newRun(targets ...target) *run.Result {
	started := time.Unix(1735689600, 0).UTC()
	results := make([]run.TargetResult, 0, len(targets))
	for _, t := range targets {
		tr := run.TargetResult{
			TargetID:   t.id,
			Status:     run.StatusSuccess,
			StartedAt:  started,
			DurationNs: int64(time.Millisecond),
			Payload:    t.payload,
		}
		if t.err != "" {
			tr.Status = run.StatusFailed
			tr.Error = t.err
			tr.Payload = nil
		}
		results = append(results, tr)
	}
	return &run.Result{
		RunID:     uuid.NewString(),
		StartedAt: started,
		Targets:   results,
		Summary:   run.Summarize(results),
	}
}

// witnessFunc adapts a function to witness.Witness.
type witnessFunc func(ctx context.Context, rec *lineage.Record) witness.Result

func (f witnessFunc) Submit(ctx context.Context, rec *lineage.Record) witness.Result {
	return f(ctx, rec)
}

// failingDriver fails the configured operations.
type failingDriver struct {
	storage.Driver
	failLoad   bool
	failCommit bool
	failAttest bool
}

func (d *failingDriver) LoadChainState(ctx context.Context) (*lineage.ChainState, error) {
	if d.failLoad {
		return nil, errors.New("disk unavailable")
	}
	return d.Driver.LoadChainState(ctx)
}

func (d *failingDriver) Commit(ctx context.Context, rec *lineage.Record, state *lineage.ChainState) error {
	if d.failCommit {
		return errors.New("disk full")
	}
	return d.Driver.Commit(ctx, rec, state)
}

func (d *failingDriver) Attest(ctx context.Context, id string, ref *lineage.AttestationReference) error {
	if d.failAttest {
		return errors.New("disk full")
	}
	return d.Driver.Attest(ctx, id, ref)
}

// recordingPublisher keeps published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*eventstream.RecordAppendedEvent
	err    error
}

func (p *recordingPublisher) PublishRecord(_ context.Context, e *eventstream.RecordAppendedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

var fixedNow = func() time.Time { return time.Unix(1735690000, 0) }

func newRecorder(d storage.Driver, w witness.Witness) *recorder.Recorder {
	r, err := recorder.New(&recorder.Config{
		Driver:  d,
		Signer:  attest.NewSigner(signingKey),
		Witness: w,
		Now:     fixedNow,
	})
	Expect(err).NotTo(HaveOccurred())
	return r
}

var _ = Describe("Recorder", func() {
	var (
		ctx    context.Context
		driver *inmemory.Driver
		rec    *recorder.Recorder
	)

	BeforeEach(func() {
		ctx = context.Background()
		driver = inmemory.NewDriver()
		rec = newRecorder(driver, nil)
	})

	It("requires a driver", func() {
		_, err := recorder.New(&recorder.Config{})
		Expect(err).To(MatchError(recorder.ErrNoDriver))
	})

	Describe("genesis", func() {
		It("links the first record to genesis and adds every target", func() {
			result := newRun(
				target{id: "octo/a", payload: map[string]any{"stars": 1}},
				target{id: "octo/b", err: "not found"},
			)

			r, err := rec.Record(ctx, result)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Sequence).To(Equal(int64(1)))
			Expect(r.PreviousHash).To(Equal(hashchain.Genesis))
			Expect(r.IsGenesis()).To(BeTrue())
			Expect(r.RunID).To(Equal(result.RunID))
			Expect(r.Timestamp).To(Equal(fixedNow().UTC()))
			Expect(r.Delta.AddedTargets).To(Equal([]run.Target{"octo/a", "octo/b"}))
			Expect(r.Delta.RemovedTargets).To(BeEmpty())
			Expect(r.Delta.ModifiedTargets).To(BeEmpty())
			Expect(r.Signature.Algorithm).To(Equal(attest.AlgorithmHMAC))

			link, err := hashchain.ChainLink(hashchain.Genesis, r.CurrentHash)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.ChainHash).To(Equal(link))

			state, err := driver.LoadChainState(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.LastHash).To(Equal(r.ChainHash))
			Expect(state.LastSequence).To(Equal(int64(1)))
			Expect(state.LastRunSnapshot.RunID).To(Equal(result.RunID))
		})
	})

	Describe("chain continuity", func() {
		It("links every record to its predecessor", func() {
			var records []*lineage.Record
			for i := range 4 {
				r, err := rec.Record(ctx, newRun(target{id: "octo/a", payload: map[string]any{"stars": i}}))
				Expect(err).NotTo(HaveOccurred())
				records = append(records, r)
			}

			for i := 1; i < len(records); i++ {
				Expect(records[i].PreviousHash).To(Equal(records[i-1].ChainHash))
				Expect(records[i].Sequence).To(Equal(records[i-1].Sequence + 1))
			}
			Expect(storage.ValidateChain(ctx, driver)).To(Succeed())
		})

		It("serializes concurrent Record calls", func() {
			var wg sync.WaitGroup
			for i := range 8 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer GinkgoRecover()
					_, err := rec.Record(ctx, newRun(target{id: "octo/a", payload: map[string]any{"n": i}}))
					Expect(err).NotTo(HaveOccurred())
				}()
			}
			wg.Wait()

			Expect(driver.Len()).To(Equal(8))
			Expect(storage.ValidateChain(ctx, driver)).To(Succeed())
		})
	})

	Describe("delta", func() {
		It("diffs each run against the previous one", func() {
			_, err := rec.Record(ctx, newRun(
				target{id: "octo/a", payload: map[string]any{"A": 1, "B": 2}},
				target{id: "octo/gone", payload: map[string]any{}},
			))
			Expect(err).NotTo(HaveOccurred())

			r, err := rec.Record(ctx, newRun(
				target{id: "octo/a", payload: map[string]any{"A": 1, "B": 3, "C": 4}},
				target{id: "octo/new", payload: map[string]any{}},
			))
			Expect(err).NotTo(HaveOccurred())

			Expect(r.Delta.AddedTargets).To(Equal([]run.Target{"octo/new"}))
			Expect(r.Delta.RemovedTargets).To(Equal([]run.Target{"octo/gone"}))
			Expect(r.Delta.ModifiedTargets).To(HaveLen(1))

			changes := r.Delta.ModifiedTargets[0].FieldChanges
			Expect(changes).To(HaveLen(2))
			Expect(changes[0].Field).To(Equal("payload.B"))
			Expect(changes[0].ChangeKind).To(Equal(delta.KindIncrease))
			Expect(changes[1].Field).To(Equal("payload.C"))
			Expect(changes[1].ChangeKind).To(Equal(delta.KindAddition))
		})
	})

	Describe("determinism", func() {
		It("hashes the same run identically in independent chains", func() {
			result := newRun(
				target{id: "octo/a", payload: map[string]any{"stars": 10, "topics": []any{"go", "ci"}}},
				target{id: "octo/b", payload: map[string]any{"stars": 3}},
			)

			r1, err := newRecorder(inmemory.NewDriver(), nil).Record(ctx, result)
			Expect(err).NotTo(HaveOccurred())
			r2, err := newRecorder(inmemory.NewDriver(), nil).Record(ctx, result)
			Expect(err).NotTo(HaveOccurred())

			Expect(r1.ExecutionID).NotTo(Equal(r2.ExecutionID))
			Expect(r1.CurrentHash).To(Equal(r2.CurrentHash))
			Expect(r1.MerkleRoot).To(Equal(r2.MerkleRoot))
			Expect(r1.ChainHash).To(Equal(r2.ChainHash))
			Expect(r1.Signature).To(Equal(r2.Signature))
		})
	})

	Describe("witnessing", func() {
		var result *run.Result

		BeforeEach(func() {
			result = newRun(target{id: "octo/a", payload: map[string]any{"stars": 5}})
		})

		It("stores the remote id of a successful submission", func() {
			w := witnessFunc(func(context.Context, *lineage.Record) witness.Result {
				return witness.Result{Status: witness.StatusSuccess, RemoteID: "w-1"}
			})

			r, err := newRecorder(driver, w).Record(ctx, result)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.AttestationReference.Status).To(Equal(lineage.AttestationWitnessed))
			Expect(r.AttestationReference.RemoteID).To(Equal("w-1"))

			stored, err := driver.Get(ctx, r.ExecutionID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.AttestationReference.RemoteID).To(Equal("w-1"))
		})

		It("keeps the record local only when the witness fails", func() {
			w := witnessFunc(func(context.Context, *lineage.Record) witness.Result {
				return witness.Result{Status: witness.StatusFailed, Err: errors.New("connection refused")}
			})

			r, err := newRecorder(driver, w).Record(ctx, result)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.AttestationReference.Status).To(Equal(lineage.AttestationLocalOnly))
			Expect(r.AttestationReference.Error).To(Equal("connection refused"))

			state, err := driver.LoadChainState(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.LastHash).To(Equal(r.ChainHash))
		})

		It("keeps the record local only without error when witnessing is disabled", func() {
			r, err := rec.Record(ctx, result)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.AttestationReference.Status).To(Equal(lineage.AttestationLocalOnly))
			Expect(r.AttestationReference.Error).To(BeEmpty())
		})

		It("bounds a hanging witness by the witness timeout", func() {
			w := witnessFunc(func(ctx context.Context, _ *lineage.Record) witness.Result {
				<-ctx.Done()
				return witness.Result{Status: witness.StatusFailed, Err: ctx.Err()}
			})
			r, err := recorder.New(&recorder.Config{
				Driver:         driver,
				Witness:        w,
				WitnessTimeout: 20 * time.Millisecond,
			})
			Expect(err).NotTo(HaveOccurred())

			record, err := r.Record(ctx, result)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.AttestationReference.Status).To(Equal(lineage.AttestationLocalOnly))
			Expect(record.AttestationReference.Error).To(ContainSubstring("deadline exceeded"))
		})

		It("never changes the persisted content, only the attestation reference", func() {
			ok := witnessFunc(func(context.Context, *lineage.Record) witness.Result {
				return witness.Result{Status: witness.StatusSuccess, RemoteID: "w-1"}
			})
			broken := witnessFunc(func(context.Context, *lineage.Record) witness.Result {
				return witness.Result{Status: witness.StatusFailed, Err: errors.New("503")}
			})

			d1, d2 := inmemory.NewDriver(), inmemory.NewDriver()
			r1, err := newRecorder(d1, ok).Record(ctx, result)
			Expect(err).NotTo(HaveOccurred())
			r2, err := newRecorder(d2, broken).Record(ctx, result)
			Expect(err).NotTo(HaveOccurred())

			s1, err := d1.Get(ctx, r1.ExecutionID)
			Expect(err).NotTo(HaveOccurred())
			s2, err := d2.Get(ctx, r2.ExecutionID)
			Expect(err).NotTo(HaveOccurred())

			Expect(s1.AttestationReference).NotTo(Equal(s2.AttestationReference))

			s1.ExecutionID, s2.ExecutionID = "", ""
			s1.AttestationReference, s2.AttestationReference = nil, nil
			Expect(s1).To(Equal(s2))
		})
	})

	Describe("failures", func() {
		It("rejects an invalid run before touching the store", func() {
			result := newRun(target{id: "octo/a", payload: map[string]any{}})
			result.Summary.Total = 5

			_, err := rec.Record(ctx, result)
			Expect(errors.Is(err, recorder.ErrInvalidRun)).To(BeTrue())
			Expect(driver.Len()).To(BeZero())
		})

		It("reports a chain state load failure", func() {
			r := newRecorder(&failingDriver{Driver: driver, failLoad: true}, nil)
			_, err := r.Record(ctx, newRun(target{id: "octo/a", payload: map[string]any{}}))

			var pe *recorder.PhaseError
			Expect(errors.As(err, &pe)).To(BeTrue())
			Expect(pe.Phase).To(Equal(recorder.PhaseLoadingState))
		})

		It("leaves no partial state when persisting fails", func() {
			fd := &failingDriver{Driver: driver}
			r := newRecorder(fd, nil)

			first, err := r.Record(ctx, newRun(target{id: "octo/a", payload: map[string]any{"stars": 1}}))
			Expect(err).NotTo(HaveOccurred())

			fd.failCommit = true
			_, err = r.Record(ctx, newRun(target{id: "octo/a", payload: map[string]any{"stars": 2}}))
			var pe *recorder.PhaseError
			Expect(errors.As(err, &pe)).To(BeTrue())
			Expect(pe.Phase).To(Equal(recorder.PhasePersisting))
			Expect(err).To(MatchError(ContainSubstring("disk full")))

			Expect(driver.Len()).To(Equal(1))
			state, err := driver.LoadChainState(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.LastHash).To(Equal(first.ChainHash))
			Expect(state.LastSequence).To(Equal(int64(1)))

			fd.failCommit = false
			next, err := r.Record(ctx, newRun(target{id: "octo/a", payload: map[string]any{"stars": 3}}))
			Expect(err).NotTo(HaveOccurred())
			Expect(next.PreviousHash).To(Equal(first.ChainHash))
			Expect(next.Sequence).To(Equal(int64(2)))
			Expect(storage.ValidateChain(ctx, driver)).To(Succeed())
		})

		It("does not fail the call when the attestation reference cannot be stored", func() {
			r := newRecorder(&failingDriver{Driver: driver, failAttest: true}, nil)
			record, err := r.Record(ctx, newRun(target{id: "octo/a", payload: map[string]any{}}))
			Expect(err).NotTo(HaveOccurred())
			Expect(record.AttestationReference).To(BeNil())
			Expect(driver.Len()).To(Equal(1))
		})
	})

	Describe("events", func() {
		It("publishes an event for every persisted record", func() {
			pub := &recordingPublisher{}
			r, err := recorder.New(&recorder.Config{Driver: driver, Publisher: pub})
			Expect(err).NotTo(HaveOccurred())

			record, err := r.Record(ctx, newRun(target{id: "octo/a", payload: map[string]any{}}))
			Expect(err).NotTo(HaveOccurred())

			Expect(pub.events).To(HaveLen(1))
			Expect(pub.events[0].Record.ExecutionID).To(Equal(record.ExecutionID))
			Expect(pub.events[0].Summary.Total).To(Equal(1))
		})

		It("ignores publish failures", func() {
			pub := &recordingPublisher{err: errors.New("broker down")}
			r, err := recorder.New(&recorder.Config{Driver: driver, Publisher: pub})
			Expect(err).NotTo(HaveOccurred())

			_, err = r.Record(ctx, newRun(target{id: "octo/a", payload: map[string]any{}}))
			Expect(err).NotTo(HaveOccurred())
			Expect(driver.Len()).To(Equal(1))
		})
	})
})
