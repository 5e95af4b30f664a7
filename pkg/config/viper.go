package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/papercomputeco/lineage/pkg/dotdir"
)

// EnvPrefix prefixes every environment variable read by InitViper.
const EnvPrefix = "LINEAGE"

// InitViper creates and returns a configured *viper.Viper.
// It sets defaults from NewDefaultConfig(), reads the config.toml file
// (if found via dotdir resolution), and binds environment variables
// with the LINEAGE_ prefix.
//
// Config precedence (highest to lowest):
//  1. CLI flags (once bound via BindRegisteredFlags)
//  2. Environment variables (LINEAGE_STORAGE_PROVIDER, LINEAGE_API_LISTEN, etc.)
//  3. config.toml file values
//  4. Defaults from NewDefaultConfig()
func InitViper(configDir string) (*viper.Viper, error) {
	v := viper.New()

	setViperDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("toml")

	ddm := dotdir.NewManager()
	target, err := ddm.Target(configDir)
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}

	if target != "" {
		v.AddConfigPath(target)
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found errors are fine, defaults will apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

// setViperDefaults registers defaults from NewDefaultConfig() into viper
// using dotted-key notation. This keeps defaults.go as the single source of truth.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("version", d.Version)

	// Storage
	v.SetDefault("storage.provider", d.Storage.Provider)
	v.SetDefault("storage.sqlite_path", d.Storage.SQLitePath)
	v.SetDefault("storage.postgres_dsn", d.Storage.PostgresDSN)
	v.SetDefault("storage.cache_size", d.Storage.CacheSize)

	// Orchestrator
	v.SetDefault("orchestrator.analyzer", d.Orchestrator.Analyzer)
	v.SetDefault("orchestrator.max_concurrency", d.Orchestrator.MaxConcurrency)
	v.SetDefault("orchestrator.per_target_timeout", d.Orchestrator.PerTargetTimeout)

	// Targets
	v.SetDefault("targets.file", d.Targets.File)

	// Attestation
	v.SetDefault("attestation.signing_key_env", d.Attestation.SigningKeyEnv)

	// Witness
	v.SetDefault("witness.endpoint", d.Witness.Endpoint)
	v.SetDefault("witness.timeout", d.Witness.Timeout)
	v.SetDefault("witness.retries", d.Witness.Retries)

	// Event stream
	v.SetDefault("eventstream.provider", d.EventStream.Provider)
	v.SetDefault("eventstream.brokers", d.EventStream.Brokers)
	v.SetDefault("eventstream.topic", d.EventStream.Topic)
	v.SetDefault("eventstream.nats_url", d.EventStream.NATSURL)
	v.SetDefault("eventstream.subject", d.EventStream.Subject)

	// API
	v.SetDefault("api.listen", d.API.Listen)

	// GitHub
	v.SetDefault("github.api_url", d.GitHub.APIURL)
	v.SetDefault("github.token_env", d.GitHub.TokenEnv)
}
