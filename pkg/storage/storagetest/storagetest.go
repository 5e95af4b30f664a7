// Package storagetest provides record fixtures and a shared ginkgo spec set
// that every storage.Driver implementation runs against.
package storagetest

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/lineage/pkg/attest"
	"github.com/papercomputeco/lineage/pkg/delta"
	"github.com/papercomputeco/lineage/pkg/hashchain"
	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/run"
	"github.com/papercomputeco/lineage/pkg/storage"
)

// NewRecord returns a record that validly extends the chain whose tip is prev.
// A nil prev yields a genesis record.
func NewRecord(prev *lineage.Record) *lineage.Record {
	rec := &lineage.Record{
		ExecutionID:  uuid.NewString(),
		Sequence:     1,
		RunID:        uuid.NewString(),
		PreviousHash: hashchain.Genesis,
		Delta: delta.Delta{
			AddedTargets:    []run.Target{},
			RemovedTargets:  []run.Target{},
			ModifiedTargets: []delta.TargetChange{},
		},
		Signature: attest.Signature{Algorithm: attest.AlgorithmTimestamp, Value: "00"},
	}
	if prev != nil {
		rec.Sequence = prev.Sequence + 1
		rec.PreviousHash = prev.ChainHash
	}
	rec.Timestamp = time.Unix(1700000000+rec.Sequence, 0).UTC()

	var err error
	rec.CurrentHash, err = hashchain.CanonicalHash(rec.RunID)
	if err != nil {
		panic(err)
	}
	rec.MerkleRoot = rec.CurrentHash
	rec.ChainHash, err = hashchain.ChainLink(rec.PreviousHash, rec.CurrentHash)
	if err != nil {
		panic(err)
	}

	return rec
}

// NewChain returns n records forming a valid chain.
func NewChain(n int) []*lineage.Record {
	records := make([]*lineage.Record, 0, n)
	var prev *lineage.Record
	for range n {
		prev = NewRecord(prev)
		records = append(records, prev)
	}
	return records
}

// StateFor returns the chain state produced by committing rec.
func StateFor(rec *lineage.Record, snapshot *run.Result) *lineage.ChainState {
	return &lineage.ChainState{
		LastHash:        rec.ChainHash,
		LastSequence:    rec.Sequence,
		LastRunSnapshot: snapshot,
	}
}

// Snapshot returns a small successful run result.
func Snapshot() *run.Result {
	targets := []run.TargetResult{
		{
			TargetID:   "octo/alpha",
			Status:     run.StatusSuccess,
			StartedAt:  time.Unix(1700000000, 0).UTC(),
			DurationNs: int64(time.Millisecond),
			Payload:    map[string]any{"stars": float64(10)},
		},
		{
			TargetID:   "octo/beta",
			Status:     run.StatusFailed,
			StartedAt:  time.Unix(1700000000, 0).UTC(),
			DurationNs: int64(time.Millisecond),
			Error:      "boom",
		},
	}
	return &run.Result{
		RunID:     uuid.NewString(),
		StartedAt: time.Unix(1700000000, 0).UTC(),
		Targets:   targets,
		Summary:   run.Summarize(targets),
	}
}

// DriverSpecs registers the shared storage.Driver specs. newDriver is called
// before each spec and must return an empty store.
func DriverSpecs(newDriver func() storage.Driver) {
	var (
		driver storage.Driver
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		driver = newDriver()
	})

	AfterEach(func() {
		if driver != nil {
			Expect(driver.Close()).To(Succeed())
		}
	})

	Describe("LoadChainState", func() {
		It("returns the genesis state for an empty store", func() {
			state, err := driver.LoadChainState(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.LastHash).To(Equal(hashchain.Genesis))
			Expect(state.LastSequence).To(BeZero())
			Expect(state.LastRunSnapshot).To(BeNil())
		})
	})

	Describe("Commit", func() {
		It("appends the record and replaces the chain state", func() {
			rec := NewRecord(nil)
			snap := Snapshot()
			Expect(driver.Commit(ctx, rec, StateFor(rec, snap))).To(Succeed())

			got, err := driver.Get(ctx, rec.ExecutionID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ChainHash).To(Equal(rec.ChainHash))
			Expect(got.Sequence).To(Equal(int64(1)))
			Expect(got.Timestamp.Equal(rec.Timestamp)).To(BeTrue())
			Expect(got.AttestationReference).To(BeNil())

			state, err := driver.LoadChainState(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.LastHash).To(Equal(rec.ChainHash))
			Expect(state.LastSequence).To(Equal(int64(1)))
			Expect(state.LastRunSnapshot).NotTo(BeNil())
			Expect(state.LastRunSnapshot.RunID).To(Equal(snap.RunID))
			Expect(state.LastRunSnapshot.Targets).To(HaveLen(2))
			Expect(state.LastRunSnapshot.Targets[0].Payload).To(HaveKeyWithValue("stars", float64(10)))
		})

		It("rejects a sequence gap without changing anything", func() {
			chain := NewChain(2)
			err := driver.Commit(ctx, chain[1], StateFor(chain[1], nil))
			Expect(errors.Is(err, storage.ErrConflict)).To(BeTrue())

			records, err := driver.List(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(BeEmpty())

			state, err := driver.LoadChainState(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.LastSequence).To(BeZero())
		})

		It("rejects a duplicate execution id", func() {
			chain := NewChain(2)
			Expect(driver.Commit(ctx, chain[0], StateFor(chain[0], nil))).To(Succeed())

			dup := chain[1].Clone()
			dup.ExecutionID = chain[0].ExecutionID
			err := driver.Commit(ctx, dup, StateFor(dup, nil))
			Expect(errors.Is(err, storage.ErrConflict)).To(BeTrue())

			state, err := driver.LoadChainState(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.LastHash).To(Equal(chain[0].ChainHash))
		})

		It("rejects a state that does not match the record", func() {
			rec := NewRecord(nil)
			state := StateFor(rec, nil)
			state.LastHash = "other"
			Expect(driver.Commit(ctx, rec, state)).NotTo(Succeed())

			_, err := driver.Get(ctx, rec.ExecutionID)
			Expect(storage.IsNotFound(err)).To(BeTrue())
		})

		It("rejects a nil record", func() {
			Expect(driver.Commit(ctx, nil, lineage.NewChainState())).To(MatchError(storage.ErrNilRecord))
		})
	})

	Describe("Get", func() {
		It("returns NotFoundError for unknown ids", func() {
			_, err := driver.Get(ctx, "missing")
			var nf storage.NotFoundError
			Expect(errors.As(err, &nf)).To(BeTrue())
			Expect(nf.ExecutionID).To(Equal("missing"))
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			for _, rec := range NewChain(3) {
				Expect(driver.Append(ctx, rec)).To(Succeed())
			}
		})

		It("returns every record most recent first", func() {
			records, err := driver.List(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(3))
			Expect(records[0].Sequence).To(Equal(int64(3)))
			Expect(records[2].Sequence).To(Equal(int64(1)))
		})

		It("honors the limit", func() {
			records, err := driver.List(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].Sequence).To(Equal(int64(3)))
			Expect(records[1].Sequence).To(Equal(int64(2)))
		})
	})

	Describe("SaveChainState", func() {
		It("replaces the stored state", func() {
			rec := NewRecord(nil)
			Expect(driver.SaveChainState(ctx, StateFor(rec, nil))).To(Succeed())

			state, err := driver.LoadChainState(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.LastHash).To(Equal(rec.ChainHash))
			Expect(state.LastSequence).To(Equal(int64(1)))
		})
	})

	Describe("Attest", func() {
		var rec *lineage.Record

		BeforeEach(func() {
			rec = NewRecord(nil)
			Expect(driver.Commit(ctx, rec, StateFor(rec, nil))).To(Succeed())
		})

		It("writes the attestation reference once", func() {
			ref := &lineage.AttestationReference{
				Status:      lineage.AttestationWitnessed,
				RemoteID:    "w-1",
				WitnessedAt: time.Unix(1700000100, 0).UTC(),
			}
			Expect(driver.Attest(ctx, rec.ExecutionID, ref)).To(Succeed())

			got, err := driver.Get(ctx, rec.ExecutionID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.AttestationReference).NotTo(BeNil())
			Expect(got.AttestationReference.Status).To(Equal(lineage.AttestationWitnessed))
			Expect(got.AttestationReference.RemoteID).To(Equal("w-1"))

			err = driver.Attest(ctx, rec.ExecutionID, &lineage.AttestationReference{Status: lineage.AttestationLocalOnly})
			Expect(errors.Is(err, storage.ErrAlreadyAttested)).To(BeTrue())

			got, err = driver.Get(ctx, rec.ExecutionID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.AttestationReference.Status).To(Equal(lineage.AttestationWitnessed))
		})

		It("returns NotFoundError for unknown ids", func() {
			err := driver.Attest(ctx, "missing", &lineage.AttestationReference{Status: lineage.AttestationLocalOnly})
			Expect(storage.IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("ValidateChain", func() {
		It("accepts an empty store", func() {
			Expect(storage.ValidateChain(ctx, driver)).To(Succeed())
		})

		It("accepts an intact chain", func() {
			for _, rec := range NewChain(4) {
				Expect(driver.Commit(ctx, rec, StateFor(rec, nil))).To(Succeed())
			}
			Expect(storage.ValidateChain(ctx, driver)).To(Succeed())
		})

		It("reports a broken link as a ChainIntegrityError", func() {
			chain := NewChain(3)
			chain[2].PreviousHash = chain[0].ChainHash
			for _, rec := range chain {
				Expect(driver.Append(ctx, rec)).To(Succeed())
			}

			err := storage.ValidateChain(ctx, driver)
			var integrity *storage.ChainIntegrityError
			Expect(errors.As(err, &integrity)).To(BeTrue())
			Expect(integrity.Sequence).To(Equal(int64(3)))
			Expect(integrity.ExecutionID).To(Equal(chain[2].ExecutionID))
		})
	})
}
