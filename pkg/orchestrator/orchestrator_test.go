package orchestrator_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/papercomputeco/lineage/pkg/analysis"
	"github.com/papercomputeco/lineage/pkg/hashchain"
	"github.com/papercomputeco/lineage/pkg/metrics"
	"github.com/papercomputeco/lineage/pkg/orchestrator"
	"github.com/papercomputeco/lineage/pkg/run"
)

func targetsN(n int) []run.Target {
	targets := make([]run.Target, n)
	for i := range targets {
		targets[i] = run.Target(fmt.Sprintf("octo/repo-%d", i))
	}
	return targets
}

func targetIDs(res *run.Result) []run.Target {
	ids := make([]run.Target, len(res.Targets))
	for i, t := range res.Targets {
		ids[i] = t.TargetID
	}
	return ids
}

func newOrchestrator(a analysis.Analyzer, concurrency int, timeout time.Duration) *orchestrator.Orchestrator {
	o, err := orchestrator.New(&orchestrator.Config{
		Analyzer:         a,
		MaxConcurrency:   concurrency,
		PerTargetTimeout: timeout,
	})
	Expect(err).NotTo(HaveOccurred())
	return o
}

var _ = Describe("Orchestrator", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("New", func() {
		It("requires an analyzer", func() {
			_, err := orchestrator.New(&orchestrator.Config{})
			Expect(err).To(MatchError(orchestrator.ErrNoAnalyzer))
		})

		It("rejects a negative concurrency", func() {
			_, err := orchestrator.New(&orchestrator.Config{
				Analyzer:       analysis.Func(func(context.Context, run.Target) (map[string]any, error) { return nil, nil }),
				MaxConcurrency: -1,
			})
			Expect(errors.Is(err, orchestrator.ErrInvalidConcurrency)).To(BeTrue())
		})

		It("applies defaults", func() {
			cfg := &orchestrator.Config{
				Analyzer: analysis.Func(func(context.Context, run.Target) (map[string]any, error) { return nil, nil }),
			}
			_, err := orchestrator.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.MaxConcurrency).To(Equal(orchestrator.DefaultMaxConcurrency))
			Expect(cfg.PerTargetTimeout).To(Equal(orchestrator.DefaultPerTargetTimeout))
		})
	})

	Describe("Run", func() {
		It("rejects duplicate targets before running anything", func() {
			var calls atomic.Int32
			o := newOrchestrator(analysis.Func(func(context.Context, run.Target) (map[string]any, error) {
				calls.Add(1)
				return nil, nil
			}), 2, time.Second)

			res, err := o.Run(ctx, []run.Target{"octo/a", "octo/b", "octo/a"})
			Expect(errors.Is(err, orchestrator.ErrDuplicateTarget)).To(BeTrue())
			Expect(res).To(BeNil())
			Expect(calls.Load()).To(BeZero())
		})

		It("rejects target ids that are not valid UTF-8", func() {
			var calls atomic.Int32
			o := newOrchestrator(analysis.Func(func(context.Context, run.Target) (map[string]any, error) {
				calls.Add(1)
				return nil, nil
			}), 2, time.Second)

			res, err := o.Run(ctx, []run.Target{"octo/a", run.Target("octo/d\xe9p\xf4t")})
			Expect(errors.Is(err, orchestrator.ErrInvalidTarget)).To(BeTrue())
			Expect(res).To(BeNil())
			Expect(calls.Load()).To(BeZero())
		})

		It("returns an empty result for no targets", func() {
			o := newOrchestrator(analysis.Func(func(context.Context, run.Target) (map[string]any, error) {
				return nil, nil
			}), 2, time.Second)

			res, err := o.Run(ctx, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.RunID).NotTo(BeEmpty())
			Expect(res.Targets).To(BeEmpty())
			Expect(res.Summary).To(Equal(run.Summary{}))
			Expect(res.Validate()).To(Succeed())
		})

		It("preserves input order when later targets finish first", func() {
			targets := targetsN(6)
			delays := map[run.Target]time.Duration{}
			for i, t := range targets {
				delays[t] = time.Duration(len(targets)-i) * 15 * time.Millisecond
			}

			var (
				mu       sync.Mutex
				finished []run.Target
			)
			o := newOrchestrator(analysis.Func(func(_ context.Context, t run.Target) (map[string]any, error) {
				time.Sleep(delays[t])
				mu.Lock()
				finished = append(finished, t)
				mu.Unlock()
				return map[string]any{"target": string(t)}, nil
			}), len(targets), time.Second)

			res, err := o.Run(ctx, targets)
			Expect(err).NotTo(HaveOccurred())
			Expect(targetIDs(res)).To(Equal(targets))
			Expect(finished[0]).To(Equal(targets[len(targets)-1]))
			for i, t := range res.Targets {
				Expect(t.Payload).To(HaveKeyWithValue("target", string(targets[i])))
			}
		})

		It("isolates a failing target from its siblings", func() {
			o := newOrchestrator(analysis.Func(func(_ context.Context, t run.Target) (map[string]any, error) {
				if t == "octo/b" {
					return nil, errors.New("rate limited")
				}
				return map[string]any{"stars": 1}, nil
			}), 3, time.Second)

			res, err := o.Run(ctx, []run.Target{"octo/a", "octo/b", "octo/c"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Summary).To(Equal(run.Summary{Total: 3, Succeeded: 2, Failed: 1}))
			Expect(res.Targets[1].Status).To(Equal(run.StatusFailed))
			Expect(res.Targets[1].Error).To(Equal("rate limited"))
			Expect(res.Targets[1].Payload).To(BeNil())
			Expect(res.Targets[0].Succeeded()).To(BeTrue())
			Expect(res.Targets[2].Succeeded()).To(BeTrue())
			Expect(res.Validate()).To(Succeed())
		})

		It("replaces invalid UTF-8 in analyzer errors", func() {
			o := newOrchestrator(analysis.Func(func(_ context.Context, t run.Target) (map[string]any, error) {
				if t == "octo/b" {
					return nil, errors.New("fatal: d\xe9p\xf4t introuvable")
				}
				return map[string]any{"stars": 1}, nil
			}), 2, time.Second)

			res, err := o.Run(ctx, []run.Target{"octo/a", "octo/b"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Targets[1].Status).To(Equal(run.StatusFailed))
			Expect(res.Targets[1].Error).To(Equal("fatal: d\uFFFDp\uFFFDt introuvable"))

			_, err = hashchain.CanonicalHash(res)
			Expect(err).NotTo(HaveOccurred())
		})

		It("converts analyzer panics into failed targets", func() {
			o := newOrchestrator(analysis.Func(func(_ context.Context, t run.Target) (map[string]any, error) {
				if t == "octo/a" {
					panic("nil map")
				}
				return map[string]any{}, nil
			}), 2, time.Second)

			res, err := o.Run(ctx, []run.Target{"octo/a", "octo/b"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Targets[0].Status).To(Equal(run.StatusFailed))
			Expect(res.Targets[0].Error).To(ContainSubstring("nil map"))
			Expect(res.Targets[1].Succeeded()).To(BeTrue())
		})

		It("times out a single slow target without affecting the others", func() {
			o := newOrchestrator(analysis.Func(func(ctx context.Context, t run.Target) (map[string]any, error) {
				if t == "octo/slow" {
					<-ctx.Done()
					return nil, ctx.Err()
				}
				return map[string]any{}, nil
			}), 2, 50*time.Millisecond)

			res, err := o.Run(ctx, []run.Target{"octo/slow", "octo/fast"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Targets[0].Status).To(Equal(run.StatusFailed))
			Expect(res.Targets[0].Error).To(Equal("timeout after 50ms"))
			Expect(res.Targets[1].Succeeded()).To(BeTrue())
		})

		It("bounds a job that ignores its context", func() {
			release := make(chan struct{})
			DeferCleanup(func() { close(release) })

			o := newOrchestrator(analysis.Func(func(context.Context, run.Target) (map[string]any, error) {
				<-release
				return map[string]any{}, nil
			}), 1, 30*time.Millisecond)

			res, err := o.Run(ctx, []run.Target{"octo/stuck"})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Targets[0].Error).To(Equal("timeout after 30ms"))
		})

		It("never runs more jobs than the concurrency limit", func() {
			var inFlight, peak atomic.Int32
			o := newOrchestrator(analysis.Func(func(context.Context, run.Target) (map[string]any, error) {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				inFlight.Add(-1)
				return map[string]any{}, nil
			}), 3, time.Second)

			res, err := o.Run(ctx, targetsN(12))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Summary.Succeeded).To(Equal(12))
			Expect(peak.Load()).To(BeNumerically("<=", 3))
		})

		It("runs strictly sequentially with a concurrency of 1", func() {
			var (
				mu    sync.Mutex
				order []run.Target
			)
			var inFlight, peak atomic.Int32
			o := newOrchestrator(analysis.Func(func(_ context.Context, t run.Target) (map[string]any, error) {
				if n := inFlight.Add(1); n > peak.Load() {
					peak.Store(n)
				}
				defer inFlight.Add(-1)
				mu.Lock()
				order = append(order, t)
				mu.Unlock()
				return map[string]any{}, nil
			}), 1, time.Second)

			targets := targetsN(5)
			res, err := o.Run(ctx, targets)
			Expect(err).NotTo(HaveOccurred())
			Expect(order).To(Equal(targets))
			Expect(targetIDs(res)).To(Equal(targets))
			Expect(peak.Load()).To(Equal(int32(1)))
		})

		It("returns a partial result when the run is cancelled", func() {
			runCtx, cancel := context.WithCancel(ctx)
			defer cancel()

			o := newOrchestrator(analysis.Func(func(ctx context.Context, t run.Target) (map[string]any, error) {
				if t == "octo/repo-0" {
					return map[string]any{"done": true}, nil
				}
				// The second job cancels the run and then waits to be interrupted.
				cancel()
				<-ctx.Done()
				return nil, ctx.Err()
			}), 1, time.Second)

			targets := targetsN(4)
			res, err := o.Run(runCtx, targets)
			Expect(err).NotTo(HaveOccurred())
			Expect(targetIDs(res)).To(Equal(targets))

			Expect(res.Targets[0].Succeeded()).To(BeTrue())
			for _, t := range res.Targets[1:] {
				Expect(t.Status).To(Equal(run.StatusFailed))
				Expect(t.Error).To(Equal(run.ErrCancelled))
			}
			Expect(res.Summary).To(Equal(run.Summary{Total: 4, Succeeded: 1, Failed: 3}))
			Expect(res.Validate()).To(Succeed())
		})

		It("records metrics for runs and targets", func() {
			m := metrics.New(prometheus.NewRegistry())
			o, err := orchestrator.New(&orchestrator.Config{
				Analyzer: analysis.Func(func(_ context.Context, t run.Target) (map[string]any, error) {
					if t == "octo/b" {
						return nil, errors.New("boom")
					}
					return map[string]any{}, nil
				}),
				MaxConcurrency: 2,
				Metrics:        m,
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = o.Run(ctx, []run.Target{"octo/a", "octo/b"})
			Expect(err).NotTo(HaveOccurred())
			Expect(testutil.ToFloat64(m.RunsTotal)).To(Equal(1.0))
			Expect(testutil.ToFloat64(m.TargetsTotal.WithLabelValues("success"))).To(Equal(1.0))
			Expect(testutil.ToFloat64(m.TargetsTotal.WithLabelValues("failed"))).To(Equal(1.0))
		})
	})
})
