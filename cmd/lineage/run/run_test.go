package runcmder

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/lineage/pkg/logger"
	"github.com/papercomputeco/lineage/pkg/run"
	"github.com/papercomputeco/lineage/pkg/targets"
)

var _ = Describe("NewRunCmd", func() {
	It("creates a command with the correct use string", func() {
		cmd := NewRunCmd()
		Expect(cmd.Use).To(Equal("run [targets...]"))
	})

	It("registers the shared flags", func() {
		cmd := NewRunCmd()
		for _, name := range []string{"storage", "sqlite", "analyzer", "concurrency", "timeout", "targets-file", "watch", "interval", "json"} {
			Expect(cmd.Flags().Lookup(name)).NotTo(BeNil(), name)
		}
	})

	It("defaults the concurrency from the config defaults", func() {
		cmd := NewRunCmd()
		Expect(cmd.Flags().Lookup("concurrency").DefValue).To(Equal("4"))
	})
})

var _ = Describe("loadTargets", func() {
	var (
		cmder *runCommander
		dir   string
	)

	BeforeEach(func() {
		cmder = &runCommander{logger: logger.Nop()}
		dir = GinkgoT().TempDir()
	})

	It("merges arguments and the targets file", func() {
		path := filepath.Join(dir, "targets.yaml")
		Expect(os.WriteFile(path, []byte("targets:\n  - octo/b\n  - octo/a\n"), 0o644)).To(Succeed())

		list, err := cmder.loadTargets(path, []string{"octo/a", "octo/c"}, false)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(Equal([]run.Target{"octo/a", "octo/c", "octo/b"}))
	})

	It("ignores a missing default targets file", func() {
		list, err := cmder.loadTargets(filepath.Join(dir, "missing.yaml"), []string{"octo/a"}, false)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(Equal([]run.Target{"octo/a"}))
	})

	It("fails on a missing explicit targets file", func() {
		_, err := cmder.loadTargets(filepath.Join(dir, "missing.yaml"), []string{"octo/a"}, true)
		Expect(err).To(MatchError(os.ErrNotExist))
	})

	It("fails on a duplicate in the targets file", func() {
		path := filepath.Join(dir, "targets.yaml")
		Expect(os.WriteFile(path, []byte("- octo/a\n- octo/a\n"), 0o644)).To(Succeed())

		_, err := cmder.loadTargets(path, nil, false)
		Expect(err).To(MatchError(targets.ErrDuplicateTarget))
	})

	It("fails without any targets", func() {
		_, err := cmder.loadTargets(filepath.Join(dir, "missing.yaml"), nil, false)
		Expect(err).To(MatchError(ErrNoTargets))
	})
})

var _ = Describe("watchTargets", func() {
	var (
		dir    string
		path   string
		ctx    context.Context
		cancel context.CancelFunc
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		path = filepath.Join(dir, "targets.yaml")
		Expect(os.WriteFile(path, []byte("- octo/a\n"), 0o644)).To(Succeed())
		ctx, cancel = context.WithCancel(context.Background())
		DeferCleanup(cancel)
	})

	start := func(interval time.Duration, calls *atomic.Int32) chan error {
		done := make(chan error, 1)
		go func() {
			done <- watchTargets(ctx, path, interval, 20*time.Millisecond, func() {
				calls.Add(1)
			})
		}()
		return done
	}

	It("triggers once after a burst of writes", func() {
		var calls atomic.Int32
		done := start(0, &calls)

		// Give the watcher time to register the directory.
		time.Sleep(100 * time.Millisecond)
		for range 3 {
			Expect(os.WriteFile(path, []byte("- octo/a\n- octo/b\n"), 0o644)).To(Succeed())
		}

		Eventually(calls.Load).Should(BeEquivalentTo(1))
		Consistently(calls.Load, 100*time.Millisecond).Should(BeEquivalentTo(1))

		cancel()
		Eventually(done).Should(Receive(BeNil()))
	})

	It("ignores other files in the directory", func() {
		var calls atomic.Int32
		done := start(0, &calls)

		time.Sleep(100 * time.Millisecond)
		Expect(os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644)).To(Succeed())

		Consistently(calls.Load, 150*time.Millisecond).Should(BeZero())

		cancel()
		Eventually(done).Should(Receive(BeNil()))
	})

	It("triggers on the interval", func() {
		var calls atomic.Int32
		done := start(30*time.Millisecond, &calls)

		Eventually(calls.Load).Should(BeNumerically(">=", 2))

		cancel()
		Eventually(done).Should(Receive(BeNil()))
	})
})
