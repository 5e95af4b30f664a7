package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/lineage/pkg/logger"
)

// fullDisk fails every write, like a run log on a full volume.
type fullDisk struct{}

func (fullDisk) Write([]byte) (int, error) {
	return 0, errors.New("no space left on device")
}

// jsonLines decodes every JSON log line written to data.
func jsonLines(data []byte) []map[string]any {
	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var parsed map[string]any
		Expect(json.Unmarshal([]byte(line), &parsed)).To(Succeed())
		lines = append(lines, parsed)
	}
	return lines
}

var _ = Describe("Logger", func() {
	Describe("New", func() {
		It("writes slog text by default", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf))
			l.Info("run started", "targets", 3)

			Expect(buf.String()).To(ContainSubstring("run started"))
			Expect(buf.String()).To(ContainSubstring("targets=3"))
		})

		It("logs per-target outcomes only in debug", func() {
			var quiet, verbose bytes.Buffer
			logger.New(logger.WithWriter(&quiet)).Debug("target analyzed", "target", "octo/a")
			logger.New(logger.WithWriter(&verbose), logger.WithDebug(true)).Debug("target analyzed", "target", "octo/a")

			Expect(quiet.String()).To(BeEmpty())
			Expect(verbose.String()).To(ContainSubstring("octo/a"))
		})

		It("writes one JSON object per record", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf), logger.WithFormat(logger.FormatJSON))
			l.Info("record appended", "sequence", 7, "execution_id", "exec-1")

			lines := jsonLines(buf.Bytes())
			Expect(lines).To(HaveLen(1))
			Expect(lines[0]["msg"]).To(Equal("record appended"))
			Expect(lines[0]["sequence"]).To(BeNumerically("==", 7))
			Expect(lines[0]["execution_id"]).To(Equal("exec-1"))
		})

		It("writes the pretty CLI format", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf), logger.WithFormat(logger.FormatPretty))
			l.Warn("witness submission failed", "attempts", 3)

			Expect(buf.String()).To(ContainSubstring("witness submission failed"))
			Expect(buf.String()).To(ContainSubstring("attempts"))
		})

		It("adds the caller when source is enabled", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf), logger.WithFormat(logger.FormatJSON), logger.WithSource(true))
			l.Info("chain verified")

			lines := jsonLines(buf.Bytes())
			Expect(lines[0]).To(HaveKey(slog.SourceKey))
		})
	})

	Describe("OpenRunLog", func() {
		It("appends to run.log across runs", func() {
			path := filepath.Join(GinkgoT().TempDir(), "run.log")

			first, closer, err := logger.OpenRunLog(path)
			Expect(err).NotTo(HaveOccurred())
			first.Info("run finished", "run_id", "run-1")
			Expect(closer.Close()).To(Succeed())

			second, closer, err := logger.OpenRunLog(path)
			Expect(err).NotTo(HaveOccurred())
			second.Info("run finished", "run_id", "run-2")
			Expect(closer.Close()).To(Succeed())

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			lines := jsonLines(data)
			Expect(lines).To(HaveLen(2))
			Expect(lines[0]["run_id"]).To(Equal("run-1"))
			Expect(lines[1]["run_id"]).To(Equal("run-2"))
		})

		It("fails when the directory does not exist", func() {
			_, _, err := logger.OpenRunLog(filepath.Join(GinkgoT().TempDir(), "missing", "run.log"))
			Expect(err).To(MatchError(ContainSubstring("opening run log")))
		})
	})

	Describe("Tee", func() {
		It("writes the console output and run.log during run --watch", func() {
			var console bytes.Buffer
			path := filepath.Join(GinkgoT().TempDir(), "run.log")
			fileLog, closer, err := logger.OpenRunLog(path)
			Expect(err).NotTo(HaveOccurred())

			l := logger.Tee(
				logger.New(logger.WithWriter(&console), logger.WithFormat(logger.FormatPretty)),
				fileLog,
			)
			l.Info("change detected, re-running", "file", "targets.yaml")
			Expect(closer.Close()).To(Succeed())

			Expect(console.String()).To(ContainSubstring("change detected, re-running"))

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			lines := jsonLines(data)
			Expect(lines).To(HaveLen(1))
			Expect(lines[0]["file"]).To(Equal("targets.yaml"))
		})

		It("binds attributes on every branch", func() {
			var console, file bytes.Buffer
			l := logger.Tee(
				logger.New(logger.WithWriter(&console)),
				logger.New(logger.WithWriter(&file), logger.WithFormat(logger.FormatJSON)),
			)

			l.With("component", "recorder").Info("record appended")

			Expect(console.String()).To(ContainSubstring("component=recorder"))
			lines := jsonLines(file.Bytes())
			Expect(lines[0]["component"]).To(Equal("recorder"))
			Expect(lines[0]["msg"]).To(Equal("record appended"))
		})

		It("nests grouped attributes", func() {
			var file bytes.Buffer
			l := logger.Tee(logger.New(logger.WithWriter(&file), logger.WithFormat(logger.FormatJSON)))

			l.WithGroup("witness").Info("attested", "status", "attested")

			lines := jsonLines(file.Bytes())
			group, ok := lines[0]["witness"].(map[string]any)
			Expect(ok).To(BeTrue(), "expected 'witness' group in JSON output")
			Expect(group["status"]).To(Equal("attested"))
		})

		It("keeps the console output when run.log cannot be written", func() {
			var console bytes.Buffer
			h := logger.Tee(
				logger.New(logger.WithWriter(fullDisk{}), logger.WithFormat(logger.FormatJSON)),
				logger.New(logger.WithWriter(&console)),
			).Handler()

			err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "run finished", 0))
			Expect(err).To(MatchError(ContainSubstring("no space left on device")))
			Expect(console.String()).To(ContainSubstring("run finished"))
		})

		It("honours each branch's level", func() {
			var console, file bytes.Buffer
			l := logger.Tee(
				logger.New(logger.WithWriter(&console)),
				logger.New(logger.WithWriter(&file), logger.WithDebug(true)),
			)
			l.Debug("target analyzed", "target", "octo/a")

			Expect(console.String()).To(BeEmpty())
			Expect(file.String()).To(ContainSubstring("target analyzed"))
		})
	})

	Describe("Nop", func() {
		It("is disabled at every level", func() {
			l := logger.Nop()
			Expect(l.Handler().Enabled(context.Background(), slog.LevelError)).To(BeFalse())
			Expect(func() {
				l.With("run_id", "run-1").WithGroup("witness").Error("msg")
			}).NotTo(Panic())
		})
	})
})
