package analysis

import (
	"fmt"
	"os"

	"github.com/papercomputeco/lineage/pkg/analysis/git"
	"github.com/papercomputeco/lineage/pkg/analysis/github"
)

// Supported analyzer kinds
const (
	GitHub = "github"
	Git    = "git"
)

// Config holds the settings shared by the built-in analyzers.
type Config struct {
	// GitHubAPIURL overrides the GitHub REST API base URL.
	GitHubAPIURL string

	// GitHubTokenEnv names the environment variable holding an optional
	// GitHub token.
	GitHubTokenEnv string

	// GitBinary overrides the git executable used by the git analyzer.
	GitBinary string
}

// SupportedAnalyzers returns the list of all supported analyzer kinds.
func SupportedAnalyzers() []string {
	return []string{GitHub, Git}
}

// New creates a new Analyzer for the given kind.
// Returns an error if the kind is not recognized.
func New(kind string, cfg Config) (Analyzer, error) {
	switch kind {
	case GitHub:
		token := ""
		if cfg.GitHubTokenEnv != "" {
			token = os.Getenv(cfg.GitHubTokenEnv)
		}
		return github.New(github.Config{
			BaseURL: cfg.GitHubAPIURL,
			Token:   token,
		}), nil
	case Git:
		return git.New(git.Config{Binary: cfg.GitBinary}), nil
	default:
		return nil, fmt.Errorf("unknown analyzer: %q (supported: %v)", kind, SupportedAnalyzers())
	}
}
