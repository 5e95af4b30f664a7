package stack_test

import (
	"bytes"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	"github.com/papercomputeco/lineage/cmd/lineage/stack"
	"github.com/papercomputeco/lineage/pkg/dotdir"
)

var _ = Describe("NewRunLogger", func() {
	It("appends JSON logs to the run log", func() {
		configDir := GinkgoT().TempDir()

		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().BoolP("debug", "d", false, "")
		cmd.SetErr(&bytes.Buffer{})

		log, closer, err := stack.NewRunLogger(cmd, configDir)
		Expect(err).NotTo(HaveOccurred())

		log.Info("recorded", "sequence", 3)
		Expect(closer.Close()).To(Succeed())

		data, err := os.ReadFile(filepath.Join(configDir, dotdir.RunLogFile))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`"msg":"recorded"`))
		Expect(string(data)).To(ContainSubstring(`"sequence":3`))
	})
})
