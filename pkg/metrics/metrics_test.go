package metrics_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/papercomputeco/lineage/pkg/metrics"
)

var _ = Describe("Metrics", func() {
	var (
		reg *prometheus.Registry
		m   *metrics.Metrics
	)

	BeforeEach(func() {
		reg = prometheus.NewRegistry()
		m = metrics.New(reg)
	})

	It("counts runs and targets by status", func() {
		m.ObserveRun()
		m.ObserveTarget("success", time.Millisecond)
		m.ObserveTarget("success", time.Millisecond)
		m.ObserveTarget("failed", time.Millisecond)

		Expect(testutil.ToFloat64(m.RunsTotal)).To(Equal(1.0))
		Expect(testutil.ToFloat64(m.TargetsTotal.WithLabelValues("success"))).To(Equal(2.0))
		Expect(testutil.ToFloat64(m.TargetsTotal.WithLabelValues("failed"))).To(Equal(1.0))
	})

	It("tracks records and the chain sequence", func() {
		m.ObserveRecord(1)
		m.ObserveRecord(2)
		m.ObserveRecordFailure("PERSISTING")
		m.ObserveWitness("failed")
		m.IncrementEventPublishErrors()

		Expect(testutil.ToFloat64(m.RecordsTotal)).To(Equal(2.0))
		Expect(testutil.ToFloat64(m.ChainSequence)).To(Equal(2.0))
		Expect(testutil.ToFloat64(m.RecordFailures.WithLabelValues("PERSISTING"))).To(Equal(1.0))
		Expect(testutil.ToFloat64(m.WitnessSubmissions.WithLabelValues("failed"))).To(Equal(1.0))
		Expect(testutil.ToFloat64(m.EventPublishErrors)).To(Equal(1.0))
	})

	It("registers every collector with the given registry", func() {
		m.ObserveRun()
		families, err := reg.Gather()
		Expect(err).NotTo(HaveOccurred())

		names := make([]string, 0, len(families))
		for _, f := range families {
			names = append(names, f.GetName())
		}
		Expect(names).To(ContainElement("lineage_runs_total"))
	})

	It("is a no-op on nil", func() {
		var nilMetrics *metrics.Metrics
		Expect(func() {
			nilMetrics.ObserveRun()
			nilMetrics.ObserveTarget("success", time.Second)
			nilMetrics.ObserveRecord(1)
			nilMetrics.ObserveRecordFailure("HASHING")
			nilMetrics.ObserveWitness("success")
			nilMetrics.IncrementEventPublishErrors()
		}).NotTo(Panic())
	})
})
