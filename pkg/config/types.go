package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/cast"
)

// Config represents the persistent lineage configuration stored as
// config.toml in the .lineage/ directory. The TOML layout uses sections for
// logical grouping.
type Config struct {
	Version      int                `toml:"version"`
	Storage      StorageConfig      `toml:"storage"`
	Orchestrator OrchestratorConfig `toml:"orchestrator"`
	Targets      TargetsConfig      `toml:"targets"`
	Attestation  AttestationConfig  `toml:"attestation"`
	Witness      WitnessConfig      `toml:"witness"`
	EventStream  EventStreamConfig  `toml:"eventstream"`
	API          APIConfig          `toml:"api"`
	GitHub       GitHubConfig       `toml:"github"`
}

// StorageConfig selects and configures the lineage store.
type StorageConfig struct {
	Provider    string `toml:"provider,omitempty"`
	SQLitePath  string `toml:"sqlite_path,omitempty"`
	PostgresDSN string `toml:"postgres_dsn,omitempty"`
	CacheSize   uint   `toml:"cache_size,omitempty"`
}

// OrchestratorConfig holds the analysis fan-out settings.
type OrchestratorConfig struct {
	Analyzer         string `toml:"analyzer,omitempty"`
	MaxConcurrency   uint   `toml:"max_concurrency,omitempty"`
	PerTargetTimeout string `toml:"per_target_timeout,omitempty"`
}

// TargetsConfig points at the default targets file.
type TargetsConfig struct {
	File string `toml:"file,omitempty"`
}

// AttestationConfig names the environment variable holding the signing key.
// The key itself is never written to the config file.
type AttestationConfig struct {
	SigningKeyEnv string `toml:"signing_key_env,omitempty"`
}

// WitnessConfig configures the external witness. An empty endpoint disables
// witnessing.
type WitnessConfig struct {
	Endpoint string `toml:"endpoint,omitempty"`
	Timeout  string `toml:"timeout,omitempty"`
	Retries  uint   `toml:"retries,omitempty"`
}

// EventStreamConfig selects the record event publisher.
type EventStreamConfig struct {
	Provider string `toml:"provider,omitempty"`

	// Brokers is a comma separated list of Kafka brokers.
	Brokers string `toml:"brokers,omitempty"`
	Topic   string `toml:"topic,omitempty"`

	NATSURL string `toml:"nats_url,omitempty"`
	Subject string `toml:"subject,omitempty"`
}

// APIConfig holds API server settings.
type APIConfig struct {
	Listen string `toml:"listen,omitempty"`
}

// GitHubConfig configures the github analyzer.
type GitHubConfig struct {
	APIURL   string `toml:"api_url,omitempty"`
	TokenEnv string `toml:"token_env,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

func stringKey(field func(c *Config) *string) configKeyInfo {
	return configKeyInfo{
		get: func(c *Config) string { return *field(c) },
		set: func(c *Config, v string) error { *field(c) = v; return nil },
	}
}

func uintKey(name string, field func(c *Config) *uint) configKeyInfo {
	return configKeyInfo{
		get: func(c *Config) string {
			if *field(c) == 0 {
				return ""
			}
			return strconv.FormatUint(uint64(*field(c)), 10)
		},
		set: func(c *Config, v string) error {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value for %s: %w", name, err)
			}
			*field(c) = uint(n)
			return nil
		},
	}
}

func durationKey(name string, field func(c *Config) *string) configKeyInfo {
	return configKeyInfo{
		get: func(c *Config) string { return *field(c) },
		set: func(c *Config, v string) error {
			d, err := cast.ToDurationE(v)
			if err != nil {
				return fmt.Errorf("invalid value for %s: %w", name, err)
			}
			if d <= 0 {
				return fmt.Errorf("invalid value for %s: must be positive", name)
			}
			*field(c) = d.String()
			return nil
		},
	}
}

func enumKey(name string, allowed []string, field func(c *Config) *string) configKeyInfo {
	return configKeyInfo{
		get: func(c *Config) string { return *field(c) },
		set: func(c *Config, v string) error {
			for _, a := range allowed {
				if v == a {
					*field(c) = v
					return nil
				}
			}
			return fmt.Errorf("invalid value for %s: %q (allowed: %v)", name, v, allowed)
		},
	}
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"storage.provider": enumKey("storage.provider", StorageProviders(),
		func(c *Config) *string { return &c.Storage.Provider }),
	"storage.sqlite_path":  stringKey(func(c *Config) *string { return &c.Storage.SQLitePath }),
	"storage.postgres_dsn": stringKey(func(c *Config) *string { return &c.Storage.PostgresDSN }),
	"storage.cache_size":   uintKey("storage.cache_size", func(c *Config) *uint { return &c.Storage.CacheSize }),

	"orchestrator.analyzer": stringKey(func(c *Config) *string { return &c.Orchestrator.Analyzer }),
	"orchestrator.max_concurrency": uintKey("orchestrator.max_concurrency",
		func(c *Config) *uint { return &c.Orchestrator.MaxConcurrency }),
	"orchestrator.per_target_timeout": durationKey("orchestrator.per_target_timeout",
		func(c *Config) *string { return &c.Orchestrator.PerTargetTimeout }),

	"targets.file": stringKey(func(c *Config) *string { return &c.Targets.File }),

	"attestation.signing_key_env": stringKey(func(c *Config) *string { return &c.Attestation.SigningKeyEnv }),

	"witness.endpoint": stringKey(func(c *Config) *string { return &c.Witness.Endpoint }),
	"witness.timeout": durationKey("witness.timeout",
		func(c *Config) *string { return &c.Witness.Timeout }),
	"witness.retries": uintKey("witness.retries", func(c *Config) *uint { return &c.Witness.Retries }),

	"eventstream.provider": enumKey("eventstream.provider", EventStreamProviders(),
		func(c *Config) *string { return &c.EventStream.Provider }),
	"eventstream.brokers":  stringKey(func(c *Config) *string { return &c.EventStream.Brokers }),
	"eventstream.topic":    stringKey(func(c *Config) *string { return &c.EventStream.Topic }),
	"eventstream.nats_url": stringKey(func(c *Config) *string { return &c.EventStream.NATSURL }),
	"eventstream.subject":  stringKey(func(c *Config) *string { return &c.EventStream.Subject }),

	"api.listen": stringKey(func(c *Config) *string { return &c.API.Listen }),

	"github.api_url":   stringKey(func(c *Config) *string { return &c.GitHub.APIURL }),
	"github.token_env": stringKey(func(c *Config) *string { return &c.GitHub.TokenEnv }),
}
