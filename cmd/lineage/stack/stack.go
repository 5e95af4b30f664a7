// Package stack assembles the lineage components (storage, analyzer,
// witness, event publisher, signer) from the layered configuration shared by
// the lineage commands.
package stack

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/papercomputeco/lineage/cmd/lineage/sqlitepath"
	"github.com/papercomputeco/lineage/pkg/analysis"
	"github.com/papercomputeco/lineage/pkg/attest"
	"github.com/papercomputeco/lineage/pkg/config"
	"github.com/papercomputeco/lineage/pkg/dotdir"
	"github.com/papercomputeco/lineage/pkg/eventstream"
	"github.com/papercomputeco/lineage/pkg/eventstream/kafka"
	"github.com/papercomputeco/lineage/pkg/eventstream/nats"
	"github.com/papercomputeco/lineage/pkg/eventstream/nop"
	"github.com/papercomputeco/lineage/pkg/storage"
	"github.com/papercomputeco/lineage/pkg/storage/cached"
	"github.com/papercomputeco/lineage/pkg/storage/inmemory"
	"github.com/papercomputeco/lineage/pkg/storage/postgres"
	"github.com/papercomputeco/lineage/pkg/storage/sqlite"
	"github.com/papercomputeco/lineage/pkg/witness"
	nopwitness "github.com/papercomputeco/lineage/pkg/witness/nop"
)

// Settings is the resolved configuration of one command invocation.
type Settings struct {
	ConfigDir string

	StorageProvider string
	SQLitePath      string
	PostgresDSN     string
	CacheSize       int

	Analyzer         string
	MaxConcurrency   int
	PerTargetTimeout time.Duration

	TargetsFile string

	SigningKeyEnv string

	WitnessEndpoint string
	WitnessTimeout  time.Duration
	WitnessRetries  int

	EventStreamProvider string
	KafkaBrokers        []string
	KafkaTopic          string
	NATSURL             string
	NATSSubject         string

	APIListen string

	GitHubAPIURL   string
	GitHubTokenEnv string
}

// Load reads the settings from v. Flags must already be bound.
func Load(v *viper.Viper, configDir string) (*Settings, error) {
	s := &Settings{
		ConfigDir: configDir,

		StorageProvider: v.GetString("storage.provider"),
		SQLitePath:      v.GetString("storage.sqlite_path"),
		PostgresDSN:     v.GetString("storage.postgres_dsn"),
		CacheSize:       v.GetInt("storage.cache_size"),

		Analyzer:         v.GetString("orchestrator.analyzer"),
		MaxConcurrency:   v.GetInt("orchestrator.max_concurrency"),
		PerTargetTimeout: v.GetDuration("orchestrator.per_target_timeout"),

		TargetsFile: v.GetString("targets.file"),

		SigningKeyEnv: v.GetString("attestation.signing_key_env"),

		WitnessEndpoint: v.GetString("witness.endpoint"),
		WitnessTimeout:  v.GetDuration("witness.timeout"),
		WitnessRetries:  v.GetInt("witness.retries"),

		EventStreamProvider: v.GetString("eventstream.provider"),
		KafkaBrokers:        splitList(v.GetString("eventstream.brokers")),
		KafkaTopic:          v.GetString("eventstream.topic"),
		NATSURL:             v.GetString("eventstream.nats_url"),
		NATSSubject:         v.GetString("eventstream.subject"),

		APIListen: v.GetString("api.listen"),

		GitHubAPIURL:   v.GetString("github.api_url"),
		GitHubTokenEnv: v.GetString("github.token_env"),
	}

	if s.MaxConcurrency < 1 {
		return nil, fmt.Errorf("orchestrator.max_concurrency must be at least 1, got %d", s.MaxConcurrency)
	}
	if s.PerTargetTimeout <= 0 {
		return nil, fmt.Errorf("orchestrator.per_target_timeout must be positive, got %q",
			v.GetString("orchestrator.per_target_timeout"))
	}

	return s, nil
}

// OpenStorage opens the configured lineage store, wrapped in a read cache
// unless the cache size is zero.
func (s *Settings) OpenStorage(ctx context.Context, log *slog.Logger) (storage.Driver, error) {
	var (
		driver storage.Driver
		err    error
	)

	switch s.StorageProvider {
	case config.StorageMemory:
		log.Warn("using in-memory storage, the chain is lost on exit")
		driver = inmemory.NewDriver()

	case config.StorageSQLite, "":
		path, rerr := sqlitepath.ResolveOrDefault(s.SQLitePath, s.ConfigDir)
		if rerr != nil {
			return nil, rerr
		}
		driver, err = sqlite.NewSQLiteDriver(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite storer: %w", err)
		}
		log.Info("using SQLite storage", "path", path)

	case config.StoragePostgres:
		if s.PostgresDSN == "" {
			return nil, fmt.Errorf("storage.postgres_dsn is required for the %s provider", config.StoragePostgres)
		}
		driver, err = postgres.NewDriver(ctx, s.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL storer: %w", err)
		}
		log.Info("using PostgreSQL storage")

	default:
		return nil, fmt.Errorf("unknown storage provider: %q (supported: %v)", s.StorageProvider, config.StorageProviders())
	}

	if s.CacheSize <= 0 {
		return driver, nil
	}

	c, err := cached.NewDriver(driver, s.CacheSize)
	if err != nil {
		driver.Close()
		return nil, err
	}
	return c, nil
}

// NewAnalyzer creates the configured analyzer.
func (s *Settings) NewAnalyzer() (analysis.Analyzer, error) {
	return analysis.New(s.Analyzer, analysis.Config{
		GitHubAPIURL:   s.GitHubAPIURL,
		GitHubTokenEnv: s.GitHubTokenEnv,
	})
}

// NewWitness creates the configured witness and the timeout that bounds the
// whole witnessing phase. An empty endpoint disables witnessing.
func (s *Settings) NewWitness(log *slog.Logger) (witness.Witness, time.Duration, error) {
	if s.WitnessEndpoint == "" {
		return nopwitness.NewWitness(), 0, nil
	}

	w, err := witness.NewHTTPWitness(witness.Config{
		Endpoint: s.WitnessEndpoint,
		Timeout:  s.WitnessTimeout,
		Retries:  s.WitnessRetries,
		Logger:   log,
	})
	if err != nil {
		return nil, 0, err
	}

	return w, w.Budget(), nil
}

// NewPublisher creates the configured record event publisher.
func (s *Settings) NewPublisher(log *slog.Logger) (eventstream.Publisher, error) {
	switch s.EventStreamProvider {
	case config.EventStreamNone, "":
		return nop.NewPublisher(), nil

	case config.EventStreamKafka:
		p, err := kafka.NewPublisher(kafka.Config{
			Brokers: s.KafkaBrokers,
			Topic:   s.KafkaTopic,
		})
		if err != nil {
			return nil, err
		}
		log.Info("publishing record events to kafka", "topic", p.Topic(), "brokers", s.KafkaBrokers)
		return p, nil

	case config.EventStreamNATS:
		p, err := nats.NewPublisher(nats.Config{
			URL:     s.NATSURL,
			Subject: s.NATSSubject,
		})
		if err != nil {
			return nil, err
		}
		log.Info("publishing record events to nats", "subject", s.NATSSubject)
		return p, nil

	default:
		return nil, fmt.Errorf("unknown eventstream provider: %q (supported: %v)",
			s.EventStreamProvider, config.EventStreamProviders())
	}
}

// SigningKey returns the HMAC key from the configured environment variable,
// or nil when it is unset.
func (s *Settings) SigningKey() []byte {
	if s.SigningKeyEnv == "" {
		return nil
	}
	key := os.Getenv(s.SigningKeyEnv)
	if key == "" {
		return nil
	}
	return []byte(key)
}

// NewSigner returns a signer for SigningKey. Without a key records are
// signed in the unverifiable timestamp mode and a warning is logged.
func (s *Settings) NewSigner(log *slog.Logger) *attest.Signer {
	key := s.SigningKey()
	if key == nil {
		log.Warn("no signing key configured, records will carry undecidable timestamp signatures",
			"env", s.SigningKeyEnv)
	}
	return attest.NewSigner(key)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// TargetsPath resolves the targets file: an absolute path or a path that
// exists relative to the working directory is used as is, anything else is
// looked up in the .lineage directory.
func (s *Settings) TargetsPath() (string, error) {
	if s.TargetsFile == "" {
		return "", nil
	}
	if filepath.IsAbs(s.TargetsFile) {
		return s.TargetsFile, nil
	}
	if _, err := os.Stat(s.TargetsFile); err == nil {
		return filepath.Abs(s.TargetsFile)
	}
	return dotdir.NewManager().Path(s.ConfigDir, s.TargetsFile)
}
