package sqlitepath

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ResolveSQLitePath", func() {
	var homeDir, cwd string

	BeforeEach(func() {
		homeDir = GinkgoT().TempDir()
		cwd = GinkgoT().TempDir()

		GinkgoT().Setenv("HOME", homeDir)
		GinkgoT().Setenv("XDG_DATA_HOME", "")
		GinkgoT().Setenv("LINEAGE_SQLITE", "")

		origCwd, err := os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Chdir(cwd)).To(Succeed())
		DeferCleanup(func() { Expect(os.Chdir(origCwd)).To(Succeed()) })
	})

	It("prefers the override", func() {
		GinkgoT().Setenv("LINEAGE_SQLITE", "/tmp/env.db")

		path, err := ResolveSQLitePath("/tmp/flag.db")
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal("/tmp/flag.db"))
	})

	It("prefers LINEAGE_SQLITE when set", func() {
		GinkgoT().Setenv("LINEAGE_SQLITE", "/tmp/custom.db")

		path, err := ResolveSQLitePath("")
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal("/tmp/custom.db"))
	})

	It("resolves ~/.lineage/lineage.db when present", func() {
		dbPath := filepath.Join(homeDir, ".lineage", "lineage.db")
		Expect(os.MkdirAll(filepath.Dir(dbPath), 0o755)).To(Succeed())
		Expect(os.WriteFile(dbPath, []byte("test"), 0o644)).To(Succeed())

		path, err := ResolveSQLitePath("")
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(dbPath))
	})

	It("prefers the local .lineage database over the home one", func() {
		Expect(os.MkdirAll(filepath.Join(homeDir, ".lineage"), 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(homeDir, ".lineage", "lineage.db"), nil, 0o644)).To(Succeed())
		Expect(os.MkdirAll(".lineage", 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(".lineage", "lineage.db"), nil, 0o644)).To(Succeed())

		path, err := ResolveSQLitePath("")
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(".lineage", "lineage.db")))
	})

	It("fails when nothing exists", func() {
		_, err := ResolveSQLitePath("")
		Expect(errors.Is(err, ErrNotFound)).To(BeTrue())
	})

	It("falls back to the default database location", func() {
		dir := filepath.Join(cwd, "state")
		path, err := ResolveOrDefault("", dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(dir, "lineage.db")))
		Expect(dir).To(BeADirectory())
	})
})
