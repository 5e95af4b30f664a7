package lineage_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/lineage/pkg/hashchain"
	"github.com/papercomputeco/lineage/pkg/lineage"
)

var _ = Describe("ChainState", func() {
	It("starts at genesis", func() {
		s := lineage.NewChainState()
		Expect(s.LastHash).To(Equal(hashchain.Genesis))
		Expect(s.LastSequence).To(BeZero())
		Expect(s.LastRunSnapshot).To(BeNil())
		Expect(s.IsEmpty()).To(BeTrue())
	})

	It("treats a nil state as empty", func() {
		var s *lineage.ChainState
		Expect(s.IsEmpty()).To(BeTrue())
	})

	It("is not empty once a record was appended", func() {
		s := &lineage.ChainState{LastHash: "abc", LastSequence: 1}
		Expect(s.IsEmpty()).To(BeFalse())
	})
})

var _ = Describe("Record", func() {
	It("knows when it opens the chain", func() {
		Expect((&lineage.Record{PreviousHash: hashchain.Genesis}).IsGenesis()).To(BeTrue())
		Expect((&lineage.Record{PreviousHash: "abc"}).IsGenesis()).To(BeFalse())
	})

	It("clones the attestation reference", func() {
		rec := &lineage.Record{
			ExecutionID: "exec-1",
			AttestationReference: &lineage.AttestationReference{
				Status: lineage.AttestationLocalOnly,
			},
		}

		c := rec.Clone()
		c.AttestationReference.Status = lineage.AttestationWitnessed
		c.ExecutionID = "exec-2"

		Expect(rec.AttestationReference.Status).To(Equal(lineage.AttestationLocalOnly))
		Expect(rec.ExecutionID).To(Equal("exec-1"))
	})

	It("clones nil to nil", func() {
		var rec *lineage.Record
		Expect(rec.Clone()).To(BeNil())
	})
})
