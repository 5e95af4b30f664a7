package config

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"

	EventStreamNone  = "none"
	EventStreamKafka = "kafka"
	EventStreamNATS  = "nats"
)

const (
	defaultStorageProvider = StorageSQLite
	defaultCacheSize       = 1024

	defaultAnalyzer         = "github"
	defaultMaxConcurrency   = 4
	defaultPerTargetTimeout = "30s"

	defaultTargetsFile = "targets.yaml"

	defaultSigningKeyEnv = "LINEAGE_SIGNING_KEY"

	defaultWitnessTimeout = "5s"
	defaultWitnessRetries = 2

	defaultEventStreamProvider = EventStreamNone
	defaultKafkaTopic          = "lineage.records"
	defaultNATSSubject         = "lineage.records.appended"

	defaultAPIListen = ":8090"

	defaultGitHubAPIURL   = "https://api.github.com"
	defaultGitHubTokenEnv = "GITHUB_TOKEN"
)

// StorageProviders returns the supported storage providers.
func StorageProviders() []string {
	return []string{StorageSQLite, StoragePostgres, StorageMemory}
}

// EventStreamProviders returns the supported event stream providers.
func EventStreamProviders() []string {
	return []string{EventStreamNone, EventStreamKafka, EventStreamNATS}
}

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Storage: StorageConfig{
			Provider:  defaultStorageProvider,
			CacheSize: defaultCacheSize,
		},
		Orchestrator: OrchestratorConfig{
			Analyzer:         defaultAnalyzer,
			MaxConcurrency:   defaultMaxConcurrency,
			PerTargetTimeout: defaultPerTargetTimeout,
		},
		Targets: TargetsConfig{
			File: defaultTargetsFile,
		},
		Attestation: AttestationConfig{
			SigningKeyEnv: defaultSigningKeyEnv,
		},
		Witness: WitnessConfig{
			Timeout: defaultWitnessTimeout,
			Retries: defaultWitnessRetries,
		},
		EventStream: EventStreamConfig{
			Provider: defaultEventStreamProvider,
			Topic:    defaultKafkaTopic,
			Subject:  defaultNATSSubject,
		},
		API: APIConfig{
			Listen: defaultAPIListen,
		},
		GitHub: GitHubConfig{
			APIURL:   defaultGitHubAPIURL,
			TokenEnv: defaultGitHubTokenEnv,
		},
	}
}
