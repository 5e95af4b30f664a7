package initcmder_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	initcmder "github.com/papercomputeco/lineage/cmd/lineage/init"
	"github.com/papercomputeco/lineage/pkg/config"
	"github.com/papercomputeco/lineage/pkg/targets"
)

var _ = Describe("NewInitCmd", func() {
	It("creates a command with the correct use string", func() {
		cmd := initcmder.NewInitCmd()
		Expect(cmd.Use).To(Equal("init"))
	})

	It("rejects any arguments", func() {
		cmd := initcmder.NewInitCmd()
		Expect(cmd.Args(cmd, []string{})).To(Succeed())
		Expect(cmd.Args(cmd, []string{"extra"})).NotTo(Succeed())
	})

	It("has a --preset flag", func() {
		cmd := initcmder.NewInitCmd()
		f := cmd.Flags().Lookup("preset")
		Expect(f).NotTo(BeNil())
		Expect(f.DefValue).To(Equal(""))
	})
})

var _ = Describe("Init command execution", func() {
	var (
		tmpDir  string
		origDir string
	)

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()

		var err error
		origDir, err = os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Chdir(tmpDir)).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.Chdir(origDir)).To(Succeed())
	})

	execute := func(args ...string) error {
		cmd := initcmder.NewInitCmd()
		cmd.SetOut(GinkgoWriter)
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	loadConfig := func() *config.Config {
		data, err := os.ReadFile(filepath.Join(tmpDir, ".lineage", "config.toml"))
		Expect(err).NotTo(HaveOccurred())
		cfg := &config.Config{}
		_, err = toml.Decode(string(data), cfg)
		Expect(err).NotTo(HaveOccurred())
		return cfg
	}

	It("creates a .lineage directory with the default config", func() {
		Expect(execute()).To(Succeed())

		info, err := os.Stat(filepath.Join(tmpDir, ".lineage"))
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())

		cfg := loadConfig()
		Expect(cfg.Version).To(Equal(config.CurrentV))
		Expect(cfg.Storage.Provider).To(Equal(config.StorageSQLite))
		Expect(cfg.Orchestrator.MaxConcurrency).To(Equal(uint(4)))
		Expect(cfg.API.Listen).To(Equal(":8090"))
	})

	It("writes an empty but valid targets template", func() {
		Expect(execute()).To(Succeed())

		list, err := targets.Load(filepath.Join(tmpDir, ".lineage", "targets.yaml"))
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(BeEmpty())
	})

	It("does not overwrite existing files", func() {
		dir := filepath.Join(tmpDir, ".lineage")
		Expect(os.MkdirAll(dir, 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "targets.yaml"), []byte("- octo/a\n"), 0o644)).To(Succeed())

		Expect(execute()).To(Succeed())

		data, err := os.ReadFile(filepath.Join(dir, "targets.yaml"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("- octo/a\n"))
	})

	Describe("--preset", func() {
		It("writes the kafka preset", func() {
			Expect(execute("--preset", "kafka")).To(Succeed())

			cfg := loadConfig()
			Expect(cfg.EventStream.Provider).To(Equal(config.EventStreamKafka))
			Expect(cfg.EventStream.Brokers).To(Equal("localhost:9092"))
		})

		It("writes the nats preset", func() {
			Expect(execute("--preset", "nats")).To(Succeed())
			Expect(loadConfig().EventStream.Provider).To(Equal(config.EventStreamNATS))
		})

		It("rejects unknown preset names without creating anything", func() {
			err := execute("--preset", "invalid")
			Expect(err).To(MatchError(ContainSubstring("unknown preset")))

			_, err = os.Stat(filepath.Join(tmpDir, ".lineage"))
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("fetches a remote config.toml", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, "version = 0\n\n[storage]\nprovider = \"postgres\"\npostgres_dsn = \"postgres://db/lineage\"\n")
			}))
			defer server.Close()

			Expect(execute("--preset", server.URL)).To(Succeed())

			cfg := loadConfig()
			Expect(cfg.Storage.Provider).To(Equal(config.StoragePostgres))
			Expect(cfg.Storage.PostgresDSN).To(Equal("postgres://db/lineage"))
		})

		It("fails on a remote error", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			Expect(execute("--preset", server.URL)).To(MatchError(ContainSubstring("unexpected status 404")))
		})

		It("rejects a remote config with an unsupported version", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, "version = 7\n")
			}))
			defer server.Close()

			Expect(execute("--preset", server.URL)).To(MatchError(ContainSubstring("unsupported config version")))
		})
	})
})
