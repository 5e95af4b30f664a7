package cached_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/storage"
	"github.com/papercomputeco/lineage/pkg/storage/cached"
	"github.com/papercomputeco/lineage/pkg/storage/inmemory"
	"github.com/papercomputeco/lineage/pkg/storage/storagetest"
)

// countingDriver counts Get calls that reach the wrapped driver. afterGet,
// when set, runs between the inner read and the return to the cache.
type countingDriver struct {
	storage.Driver
	gets     int
	afterGet func()
}

func (c *countingDriver) Get(ctx context.Context, id string) (*lineage.Record, error) {
	c.gets++
	rec, err := c.Driver.Get(ctx, id)
	if c.afterGet != nil {
		c.afterGet()
	}
	return rec, err
}

var localOnly = &lineage.AttestationReference{Status: lineage.AttestationLocalOnly}

var _ = Describe("Driver", func() {
	storagetest.DriverSpecs(func() storage.Driver {
		d, err := cached.NewDriver(inmemory.NewDriver(), 8)
		Expect(err).NotTo(HaveOccurred())
		return d
	})

	Describe("caching", func() {
		var (
			ctx    context.Context
			inner  *countingDriver
			driver *cached.Driver
			rec    *lineage.Record
		)

		BeforeEach(func() {
			ctx = context.Background()
			inner = &countingDriver{Driver: inmemory.NewDriver()}

			var err error
			driver, err = cached.NewDriver(inner, 2)
			Expect(err).NotTo(HaveOccurred())

			rec = storagetest.NewRecord(nil)
			Expect(driver.Commit(ctx, rec, storagetest.StateFor(rec, nil))).To(Succeed())
		})

		It("serves repeated lookups of an attested record from the cache", func() {
			Expect(driver.Attest(ctx, rec.ExecutionID, localOnly)).To(Succeed())

			for range 3 {
				got, err := driver.Get(ctx, rec.ExecutionID)
				Expect(err).NotTo(HaveOccurred())
				Expect(got.ExecutionID).To(Equal(rec.ExecutionID))
			}
			Expect(inner.gets).To(Equal(1))
			Expect(driver.Len()).To(Equal(1))
		})

		It("does not cache misses", func() {
			_, err := driver.Get(ctx, "missing")
			Expect(storage.IsNotFound(err)).To(BeTrue())
			Expect(driver.Len()).To(BeZero())
		})

		It("reads unattested records through to the wrapped driver", func() {
			for range 2 {
				got, err := driver.Get(ctx, rec.ExecutionID)
				Expect(err).NotTo(HaveOccurred())
				Expect(got.AttestationReference).To(BeNil())
			}
			Expect(inner.gets).To(Equal(2))
			Expect(driver.Len()).To(BeZero())
		})

		It("sees the attestation after the record is attested", func() {
			_, err := driver.Get(ctx, rec.ExecutionID)
			Expect(err).NotTo(HaveOccurred())

			Expect(driver.Attest(ctx, rec.ExecutionID, localOnly)).To(Succeed())

			got, err := driver.Get(ctx, rec.ExecutionID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.AttestationReference).NotTo(BeNil())
			Expect(got.AttestationReference.Status).To(Equal(lineage.AttestationLocalOnly))
			Expect(inner.gets).To(Equal(2))
		})

		It("does not keep a stale copy read while an Attest was in flight", func() {
			loaded := make(chan struct{})
			resume := make(chan struct{})
			inner.afterGet = func() {
				close(loaded)
				<-resume
			}

			done := make(chan error, 1)
			go func() {
				defer GinkgoRecover()
				_, err := driver.Get(ctx, rec.ExecutionID)
				done <- err
			}()

			// The Get has read the unattested record but not returned yet.
			Eventually(loaded).Should(BeClosed())
			Expect(driver.Attest(ctx, rec.ExecutionID, localOnly)).To(Succeed())
			close(resume)
			Eventually(done).Should(Receive(BeNil()))

			inner.afterGet = nil
			got, err := driver.Get(ctx, rec.ExecutionID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.AttestationReference).NotTo(BeNil())
		})
	})
})
