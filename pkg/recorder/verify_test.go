package recorder_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/lineage/pkg/attest"
	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/recorder"
	"github.com/papercomputeco/lineage/pkg/storage/inmemory"
	"github.com/papercomputeco/lineage/pkg/storage/sqlite"
)

var _ = Describe("Verify", func() {
	var (
		ctx    context.Context
		record *lineage.Record
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		record, err = newRecorder(inmemory.NewDriver(), nil).Record(ctx, newRun(
			target{id: "octo/a", payload: map[string]any{"stars": 42, "archived": false}},
			target{id: "octo/b", err: "rate limited"},
		))
		Expect(err).NotTo(HaveOccurred())
	})

	It("accepts an untouched record", func() {
		report, err := recorder.Verify(record, signingKey)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.ExecutionID).To(Equal(record.ExecutionID))
		Expect(report.ContentHash).To(BeTrue())
		Expect(report.MerkleRoot).To(BeTrue())
		Expect(report.ChainLink).To(BeTrue())
		Expect(report.Signature).To(Equal(attest.Valid))
		Expect(report.OK()).To(BeTrue())
	})

	It("rejects the signature under the wrong key", func() {
		report, err := recorder.Verify(record, []byte("other-key"))
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Signature).To(Equal(attest.Invalid))
		Expect(report.OK()).To(BeFalse())
	})

	It("detects a modified payload", func() {
		tampered := record.Clone()
		run := *record.Run
		run.Targets = append(run.Targets[:0:0], record.Run.Targets...)
		run.Targets[0].Payload = map[string]any{"stars": 43, "archived": false}
		tampered.Run = &run

		report, err := recorder.Verify(tampered, signingKey)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.ContentHash).To(BeFalse())
		Expect(report.MerkleRoot).To(BeFalse())
		Expect(report.Signature).To(Equal(attest.Invalid))
		Expect(report.OK()).To(BeFalse())
	})

	It("detects a rewritten chain hash", func() {
		tampered := record.Clone()
		tampered.ChainHash = "0000"

		report, err := recorder.Verify(tampered, signingKey)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.ChainLink).To(BeFalse())
		Expect(report.ContentHash).To(BeTrue())
	})

	It("cannot decide unkeyed signatures", func() {
		r, err := recorder.New(&recorder.Config{Driver: inmemory.NewDriver()})
		Expect(err).NotTo(HaveOccurred())
		unkeyed, err := r.Record(ctx, newRun(target{id: "octo/a", payload: map[string]any{}}))
		Expect(err).NotTo(HaveOccurred())
		Expect(unkeyed.Signature.Algorithm).To(Equal(attest.AlgorithmTimestamp))

		report, err := recorder.Verify(unkeyed, signingKey)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Signature).To(Equal(attest.Undecidable))
		Expect(report.OK()).To(BeTrue())
	})

	It("requires the run result", func() {
		stripped := record.Clone()
		stripped.Run = nil

		_, err := recorder.Verify(stripped, signingKey)
		Expect(err).To(MatchError(recorder.ErrNoRun))
	})

	It("verifies records read back from sqlite", func() {
		driver, err := sqlite.NewSQLiteDriver(ctx, ":memory:")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(driver.Close)

		r := newRecorder(driver, nil)
		for i := range 2 {
			_, err := r.Record(ctx, newRun(
				target{id: "octo/a", payload: map[string]any{"stars": 10 + i, "topics": []any{"go"}}},
			))
			Expect(err).NotTo(HaveOccurred())
		}

		records, err := driver.List(ctx, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(2))

		for _, stored := range records {
			report, err := recorder.Verify(stored, signingKey)
			Expect(err).NotTo(HaveOccurred())
			Expect(report.OK()).To(BeTrue())
			Expect(report.Signature).To(Equal(attest.Valid))
		}
	})
})
