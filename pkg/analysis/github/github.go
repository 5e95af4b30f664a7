// Package github implements an analysis.Analyzer that reads repository
// metadata from the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/papercomputeco/lineage/pkg/run"
)

const (
	// DefaultBaseURL is the public GitHub REST API.
	DefaultBaseURL = "https://api.github.com"

	// Name is the analyzer name.
	Name = "github"
)

// Config holds configuration for the GitHub analyzer.
type Config struct {
	// BaseURL is the API URL. Defaults to DefaultBaseURL if empty.
	BaseURL string

	// Token is an optional bearer token.
	Token string

	// HTTPClient overrides the client used for requests.
	HTTPClient *http.Client
}

// Analyzer fetches repository metadata for "owner/name" targets.
type Analyzer struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// repoResponse is the subset of GET /repos/{owner}/{repo} that is monitored.
type repoResponse struct {
	StargazersCount  int       `json:"stargazers_count"`
	ForksCount       int       `json:"forks_count"`
	OpenIssuesCount  int       `json:"open_issues_count"`
	SubscribersCount int       `json:"subscribers_count"`
	Size             int       `json:"size"`
	Archived         bool      `json:"archived"`
	DefaultBranch    string    `json:"default_branch"`
	PushedAt         time.Time `json:"pushed_at"`
}

// New creates a new GitHub analyzer.
func New(cfg Config) *Analyzer {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	return &Analyzer{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      cfg.Token,
		httpClient: client,
	}
}

// Name returns "github".
func (a *Analyzer) Name() string {
	return Name
}

// Analyze fetches the repository and returns its monitored counters and
// attributes.
func (a *Analyzer) Analyze(ctx context.Context, target run.Target) (map[string]any, error) {
	owner, name, err := target.Repo()
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/repos/%s/%s", a.baseURL, url.PathEscape(owner), url.PathEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("github returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var repo repoResponse
	if err := json.NewDecoder(resp.Body).Decode(&repo); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return map[string]any{
		"stars":          repo.StargazersCount,
		"forks":          repo.ForksCount,
		"open_issues":    repo.OpenIssuesCount,
		"watchers":       repo.SubscribersCount,
		"size":           repo.Size,
		"archived":       repo.Archived,
		"default_branch": repo.DefaultBranch,
		"pushed_at":      repo.PushedAt.UTC().Format(time.RFC3339),
	}, nil
}
