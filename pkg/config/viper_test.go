package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	"github.com/papercomputeco/lineage/pkg/config"
)

var _ = Describe("InitViper", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "viper-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	It("returns viper with defaults when no config file exists", func() {
		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		defaults := config.NewDefaultConfig()
		Expect(v.GetString("storage.provider")).To(Equal(defaults.Storage.Provider))
		Expect(v.GetUint("orchestrator.max_concurrency")).To(Equal(defaults.Orchestrator.MaxConcurrency))
		Expect(v.GetDuration("orchestrator.per_target_timeout")).To(Equal(30 * time.Second))
		Expect(v.GetDuration("witness.timeout")).To(Equal(5 * time.Second))
		Expect(v.GetString("api.listen")).To(Equal(defaults.API.Listen))
	})

	It("reads config file values over defaults", func() {
		data := `[orchestrator]
analyzer = "git"
`
		Expect(os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)).To(Succeed())

		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(v.GetString("orchestrator.analyzer")).To(Equal("git"))
		Expect(v.GetUint("orchestrator.max_concurrency")).To(Equal(uint(4)))
	})

	It("env vars take precedence over config file values", func() {
		data := `[storage]
provider = "sqlite"
`
		Expect(os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)).To(Succeed())

		GinkgoT().Setenv("LINEAGE_STORAGE_PROVIDER", "memory")

		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())
		Expect(v.GetString("storage.provider")).To(Equal("memory"))
	})
})

var _ = Describe("BindFlags", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "bindflag-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	It("binds cobra flags to viper keys via registry", func() {
		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		cmd := &cobra.Command{Use: "test"}
		var listen string
		config.AddStringFlag(cmd, config.Flags, config.FlagAPIListen, &listen)

		Expect(cmd.Flags().Set("listen", ":7777")).To(Succeed())
		config.BindRegisteredFlags(v, cmd, config.Flags, []string{config.FlagAPIListen})

		Expect(v.GetString("api.listen")).To(Equal(":7777"))
	})

	It("falls through to config when flag not set", func() {
		data := `[api]
listen = ":5555"
`
		Expect(os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(data), 0o600)).To(Succeed())

		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		cmd := &cobra.Command{Use: "test"}
		var listen string
		config.AddStringFlag(cmd, config.Flags, config.FlagAPIListen, &listen)
		config.BindRegisteredFlags(v, cmd, config.Flags, []string{config.FlagAPIListen})

		Expect(v.GetString("api.listen")).To(Equal(":5555"))
	})

	It("skips bindings for nonexistent registry keys", func() {
		v, err := config.InitViper(tmpDir)
		Expect(err).NotTo(HaveOccurred())

		cmd := &cobra.Command{Use: "test"}
		config.BindRegisteredFlags(v, cmd, config.Flags, []string{"nonexistent"})

		Expect(v.GetString("api.listen")).To(Equal(":8090"))
	})

	It("AddStringFlag pulls name, shorthand, default and description from the registry", func() {
		cmd := &cobra.Command{Use: "test"}
		var timeout string
		config.AddStringFlag(cmd, config.Flags, config.FlagTimeout, &timeout)

		f := cmd.Flags().Lookup("timeout")
		Expect(f).NotTo(BeNil())
		Expect(f.Shorthand).To(Equal("t"))
		Expect(f.DefValue).To(Equal("30s"))
		Expect(f.Usage).To(Equal(config.Flags[config.FlagTimeout].Description))
	})

	It("AddUintFlag uses the configured default", func() {
		cmd := &cobra.Command{Use: "test"}
		var concurrency uint
		config.AddUintFlag(cmd, config.Flags, config.FlagConcurrency, &concurrency)

		f := cmd.Flags().Lookup("concurrency")
		Expect(f).NotTo(BeNil())
		Expect(f.DefValue).To(Equal("4"))
		Expect(concurrency).To(Equal(uint(4)))
	})
})
