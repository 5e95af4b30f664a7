package cliui_test

import (
	"bytes"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/lineage/pkg/cliui"
)

var _ = Describe("Step", func() {
	It("reports success", func() {
		var buf bytes.Buffer
		err := cliui.Step(&buf, "loading targets", func() error { return nil })
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring("loading targets"))
		Expect(buf.String()).To(ContainSubstring(cliui.SuccessMark))
	})

	It("returns the error of fn", func() {
		var buf bytes.Buffer
		boom := errors.New("boom")
		err := cliui.Step(&buf, "recording", func() error { return boom })
		Expect(err).To(MatchError(boom))
		Expect(buf.String()).To(ContainSubstring(cliui.FailMark))
	})
})

var _ = Describe("helpers", func() {
	It("formats durations", func() {
		Expect(cliui.FormatDuration(12 * time.Millisecond)).To(Equal("12ms"))
		Expect(cliui.FormatDuration(3200 * time.Millisecond)).To(Equal("3.2s"))
	})

	It("shortens hashes", func() {
		Expect(cliui.ShortHash("0123456789abcdef")).To(Equal("0123456789ab"))
		Expect(cliui.ShortHash("genesis")).To(Equal("genesis"))
	})

	It("maps statuses to marks", func() {
		Expect(cliui.StatusMark("valid")).To(Equal(cliui.SuccessMark))
		Expect(cliui.StatusMark("undecidable")).To(Equal(cliui.WarnMark))
		Expect(cliui.StatusMark("failed")).To(Equal(cliui.FailMark))
	})
})
