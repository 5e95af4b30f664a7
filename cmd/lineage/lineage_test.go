package lineagecmder_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	lineagecmder "github.com/papercomputeco/lineage/cmd/lineage"
	verifycmder "github.com/papercomputeco/lineage/cmd/lineage/verify"
	"github.com/papercomputeco/lineage/pkg/attest"
	"github.com/papercomputeco/lineage/pkg/lineage"
)

var _ = Describe("NewLineageCmd", func() {
	It("registers every subcommand", func() {
		cmd := lineagecmder.NewLineageCmd()
		names := []string{}
		for _, sub := range cmd.Commands() {
			names = append(names, sub.Name())
		}
		Expect(names).To(ContainElements("init", "run", "history", "show", "verify", "serve", "config", "version"))
	})

	It("has the global flags", func() {
		cmd := lineagecmder.NewLineageCmd()
		Expect(cmd.PersistentFlags().Lookup("debug")).NotTo(BeNil())
		Expect(cmd.PersistentFlags().Lookup("config-dir")).NotTo(BeNil())
	})
})

var _ = Describe("lineage end to end", func() {
	var (
		configDir string
		dbPath    string
	)

	BeforeEach(func() {
		configDir = GinkgoT().TempDir()
		dbPath = filepath.Join(configDir, "chain.db")
		GinkgoT().Setenv("LINEAGE_SIGNING_KEY", "test-signing-key")
	})

	execute := func(args ...string) (string, error) {
		var out bytes.Buffer
		cmd := lineagecmder.NewLineageCmd()
		cmd.SetOut(&out)
		cmd.SetErr(GinkgoWriter)
		cmd.SetArgs(append(args, "--config-dir", configDir, "--sqlite", dbPath))
		err := cmd.Execute()
		return out.String(), err
	}

	// Malformed targets fail inside the analyzer without any network access,
	// which still yields a complete run to record.
	record := func(targets ...string) *lineage.Record {
		out, err := execute(append([]string{"run", "--json"}, targets...)...)
		Expect(err).NotTo(HaveOccurred())

		start := strings.IndexByte(out, '{')
		Expect(start).To(BeNumerically(">=", 0))

		rec := &lineage.Record{}
		Expect(json.Unmarshal([]byte(out[start:]), rec)).To(Succeed())
		return rec
	}

	It("appends linked records across invocations", func() {
		first := record("bad-one", "bad-two")
		Expect(first.Sequence).To(Equal(int64(1)))
		Expect(first.IsGenesis()).To(BeTrue())
		Expect(first.Run.Summary.Failed).To(Equal(2))
		Expect(first.Signature.Algorithm).To(Equal(attest.AlgorithmHMAC))

		second := record("bad-two", "bad-three")
		Expect(second.Sequence).To(Equal(int64(2)))
		Expect(second.PreviousHash).To(Equal(first.ChainHash))
		Expect(second.Delta.AddedTargets).To(ConsistOf(BeEquivalentTo("bad-three")))
		Expect(second.Delta.RemovedTargets).To(ConsistOf(BeEquivalentTo("bad-one")))
	})

	It("lists the history newest first", func() {
		record("bad-one")
		record("bad-two")

		out, err := execute("history", "--json")
		Expect(err).NotTo(HaveOccurred())

		var records []*lineage.Record
		Expect(json.Unmarshal([]byte(out), &records)).To(Succeed())
		Expect(records).To(HaveLen(2))
		Expect(records[0].Sequence).To(Equal(int64(2)))
	})

	It("shows a record by id", func() {
		rec := record("bad-one")

		out, err := execute("show", rec.ExecutionID)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring(rec.ExecutionID))
		Expect(out).To(ContainSubstring("bad-one"))
	})

	It("fails to show an unknown record", func() {
		record("bad-one")
		_, err := execute("show", "no-such-id")
		Expect(err).To(MatchError(ContainSubstring("no record with execution id")))
	})

	It("verifies the chain and a record", func() {
		rec := record("bad-one")
		record("bad-two")

		out, err := execute("verify")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("chain valid"))

		out, err = execute("verify", rec.ExecutionID, "--json")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring(`"signature":"valid"`))
	})

	It("rejects a record under the wrong key", func() {
		rec := record("bad-one")

		GinkgoT().Setenv("LINEAGE_SIGNING_KEY", "another-key")
		out, err := execute("verify", rec.ExecutionID, "--json")
		Expect(err).To(MatchError(verifycmder.ErrVerificationFailed))
		Expect(out).To(ContainSubstring(`"signature":"invalid"`))
	})

	It("fails a run without targets", func() {
		_, err := execute("run", "--targets-file", filepath.Join(configDir, "none.yaml"))
		Expect(err).To(HaveOccurred())
	})

	It("prints the version", func() {
		var out bytes.Buffer
		cmd := lineagecmder.NewLineageCmd()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"version"})
		Expect(cmd.Execute()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Version:"))
	})
})
