// Package git implements an analysis.Analyzer that lists the refs of a
// remote repository with "git ls-remote".
package git

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/papercomputeco/lineage/pkg/run"
)

const (
	// Name is the analyzer name.
	Name = "git"

	defaultBinary = "git"
	githubURL     = "https://github.com/"
)

// Config holds configuration for the git analyzer.
type Config struct {
	// Binary is the git executable. Defaults to "git" on PATH.
	Binary string
}

// Analyzer runs "git ls-remote" against each target.
type Analyzer struct {
	binary string
}

// New creates a new git analyzer.
func New(cfg Config) *Analyzer {
	binary := cfg.Binary
	if binary == "" {
		binary = defaultBinary
	}
	return &Analyzer{binary: binary}
}

// Name returns "git".
func (a *Analyzer) Name() string {
	return Name
}

// Analyze lists the remote refs of target and returns the branch and tag
// counts and the commit HEAD points to.
func (a *Analyzer) Analyze(ctx context.Context, target run.Target) (map[string]any, error) {
	remote, err := RemoteURL(target)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, a.binary, "ls-remote", remote)
	cmd.Env = append(cmd.Environ(), "GIT_TERMINAL_PROMPT=0")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("git ls-remote %s: %w: %s", remote, err, strings.TrimSpace(stderr.String()))
	}

	return ParseLsRemote(out)
}

// RemoteURL returns the URL to query for target. URLs and local paths are
// used as is, "owner/name" targets resolve to GitHub.
func RemoteURL(target run.Target) (string, error) {
	t := string(target)
	if strings.Contains(t, "://") || strings.HasPrefix(t, "/") || strings.HasPrefix(t, ".") || strings.HasPrefix(t, "git@") {
		return t, nil
	}

	owner, name, err := target.Repo()
	if err != nil {
		return "", err
	}
	return githubURL + owner + "/" + name + ".git", nil
}

// ParseLsRemote turns "git ls-remote" output into a payload.
func ParseLsRemote(out []byte) (map[string]any, error) {
	var (
		branches int
		tags     int
		head     string
	)

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		sha, ref, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("unexpected ls-remote line: %q", line)
		}

		switch {
		case ref == "HEAD":
			head = sha
		case strings.HasPrefix(ref, "refs/heads/"):
			branches++
		case strings.HasPrefix(ref, "refs/tags/") && !strings.HasSuffix(ref, "^{}"):
			tags++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ls-remote output: %w", err)
	}

	if head == "" && branches == 0 {
		return nil, errors.New("remote has no refs")
	}

	return map[string]any{
		"branches": branches,
		"tags":     tags,
		"head":     head,
	}, nil
}
