package storage_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/lineage/pkg/storage"
	"github.com/papercomputeco/lineage/pkg/storage/storagetest"
)

var _ = Describe("ValidateRecords", func() {
	integrityError := func(err error) *storage.ChainIntegrityError {
		var integrity *storage.ChainIntegrityError
		Expect(errors.As(err, &integrity)).To(BeTrue())
		return integrity
	}

	It("accepts an intact chain", func() {
		Expect(storage.ValidateRecords(storagetest.NewChain(5))).To(Succeed())
	})

	It("rejects a first record that does not link to genesis", func() {
		chain := storagetest.NewChain(2)
		chain[0].PreviousHash = "not-genesis"

		integrity := integrityError(storage.ValidateRecords(chain))
		Expect(integrity.Sequence).To(Equal(int64(1)))
		Expect(integrity.Reason).To(ContainSubstring("genesis"))
	})

	It("rejects a tampered current hash", func() {
		chain := storagetest.NewChain(3)
		chain[1].CurrentHash = "tampered"

		integrity := integrityError(storage.ValidateRecords(chain))
		Expect(integrity.Sequence).To(Equal(int64(2)))
		Expect(integrity.ExecutionID).To(Equal(chain[1].ExecutionID))
	})

	It("rejects a record that skips its predecessor", func() {
		chain := storagetest.NewChain(3)
		chain = append(chain[:1], chain[2:]...)

		integrity := integrityError(storage.ValidateRecords(chain))
		Expect(integrity.Reason).To(ContainSubstring("expected sequence 2"))
	})
})

var _ = Describe("Errors", func() {
	It("formats NotFoundError", func() {
		Expect(storage.NotFoundError{}.Error()).To(Equal("record not found"))
		Expect(storage.NotFoundError{ExecutionID: "abc"}.Error()).To(Equal("record not found: abc"))
	})

	It("detects wrapped not found errors", func() {
		err := errors.Join(errors.New("context"), storage.NotFoundError{ExecutionID: "abc"})
		Expect(storage.IsNotFound(err)).To(BeTrue())
		Expect(storage.IsNotFound(storage.ErrConflict)).To(BeFalse())
	})

	It("checks append order", func() {
		rec := storagetest.NewRecord(nil)
		Expect(storage.CheckAppend(rec, 0)).To(Succeed())
		Expect(errors.Is(storage.CheckAppend(rec, 1), storage.ErrConflict)).To(BeTrue())
	})
})
