package analysis_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/lineage/pkg/analysis"
	"github.com/papercomputeco/lineage/pkg/run"
)

var _ = Describe("New", func() {
	It("creates every supported analyzer", func() {
		for _, kind := range analysis.SupportedAnalyzers() {
			a, err := analysis.New(kind, analysis.Config{})
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Name()).To(Equal(kind))
		}
	})

	It("rejects unknown kinds", func() {
		_, err := analysis.New("svn", analysis.Config{})
		Expect(err).To(MatchError(ContainSubstring(`unknown analyzer: "svn"`)))
	})
})

var _ = Describe("Func", func() {
	It("adapts a function", func() {
		var a analysis.Analyzer = analysis.Func(func(_ context.Context, t run.Target) (map[string]any, error) {
			return map[string]any{"target": string(t)}, nil
		})

		payload, err := a.Analyze(context.Background(), "octo/alpha")
		Expect(err).NotTo(HaveOccurred())
		Expect(payload).To(HaveKeyWithValue("target", "octo/alpha"))
		Expect(a.Name()).To(Equal("func"))
	})
})
