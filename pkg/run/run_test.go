package run_test

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/lineage/pkg/run"
)

func result(targets ...run.TargetResult) *run.Result {
	return &run.Result{
		RunID:     "run-1",
		StartedAt: time.Unix(1735689600, 0).UTC(),
		Targets:   targets,
		Summary:   run.Summarize(targets),
	}
}

var _ = Describe("Result", func() {
	ok := run.TargetResult{TargetID: "acme/one", Status: run.StatusSuccess}
	failed := run.TargetResult{TargetID: "acme/two", Status: run.StatusFailed, Error: "boom"}

	Describe("Summarize", func() {
		It("counts successes and failures", func() {
			Expect(run.Summarize([]run.TargetResult{ok, failed})).To(Equal(run.Summary{Total: 2, Succeeded: 1, Failed: 1}))
		})

		It("is zero for no results", func() {
			Expect(run.Summarize(nil)).To(Equal(run.Summary{}))
		})
	})

	Describe("Validate", func() {
		It("accepts a consistent result", func() {
			Expect(result(ok, failed).Validate()).To(Succeed())
		})

		It("accepts an empty run", func() {
			Expect(result().Validate()).To(Succeed())
		})

		It("rejects a summary that disagrees with the targets", func() {
			r := result(ok, failed)
			r.Summary.Succeeded = 2
			r.Summary.Failed = 0
			Expect(r.Validate()).To(MatchError(ContainSubstring("does not match target statuses")))
		})

		It("rejects a total that disagrees with len(targets)", func() {
			r := result(ok)
			r.Summary.Total = 3
			Expect(r.Validate()).To(HaveOccurred())
		})

		It("rejects duplicate targets", func() {
			Expect(result(ok, ok).Validate()).To(MatchError(ContainSubstring("duplicate target")))
		})

		It("rejects failed targets without an error", func() {
			Expect(result(run.TargetResult{TargetID: "acme/x", Status: run.StatusFailed}).Validate()).To(HaveOccurred())
		})

		It("rejects a missing run id", func() {
			r := result(ok)
			r.RunID = ""
			Expect(r.Validate()).To(HaveOccurred())
		})
	})

	Describe("TargetResult", func() {
		It("exposes the duration", func() {
			r := run.TargetResult{DurationNs: int64(3 * time.Second)}
			Expect(r.Duration()).To(Equal(3 * time.Second))
		})
	})
})

var _ = Describe("Target", func() {
	It("splits owner and name", func() {
		owner, name, err := run.Target("octo/alpha").Repo()
		Expect(err).NotTo(HaveOccurred())
		Expect(owner).To(Equal("octo"))
		Expect(name).To(Equal("alpha"))
	})

	DescribeTable("rejects malformed targets",
		func(t string) {
			_, _, err := run.Target(t).Repo()
			Expect(errors.Is(err, run.ErrMalformedTarget)).To(BeTrue())
		},
		Entry("no slash", "octo"),
		Entry("empty owner", "/alpha"),
		Entry("empty name", "octo/"),
		Entry("nested path", "octo/alpha/beta"),
		Entry("whitespace", "octo/al pha"),
	)
})
