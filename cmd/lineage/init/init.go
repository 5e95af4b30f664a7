// Package initcmder provides the init command for initializing a local
// .lineage directory in the current working directory.
package initcmder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/papercomputeco/lineage/pkg/cliui"
	"github.com/papercomputeco/lineage/pkg/config"
	"github.com/papercomputeco/lineage/pkg/dotdir"
)

const (
	configFile = "config.toml"

	fetchTimeout = 10 * time.Second

	// maxRemoteConfig caps the size of a fetched config file.
	maxRemoteConfig = 1 << 20
)

const targetsTemplate = `# Targets analyzed by "lineage run", one owner/name repository per entry.
targets:
  # - octocat/hello-world
`

const initLongDesc string = `Initialize a new .lineage/ directory in the current working directory.

Creates a local .lineage/ directory that takes precedence over the default
~/.lineage/ directory for the chain database, configuration and targets
file. A config.toml is written from the chosen preset and an empty
targets.yaml template is added. Existing files are never overwritten.

Presets:
  local    SQLite storage, no event stream (default)
  kafka    Publish record events to a local Kafka broker
  nats     Publish record events to a local NATS server

The preset may also be an http(s) URL of a config.toml to fetch.

Examples:
  lineage init
  lineage init --preset kafka
  lineage init --preset https://example.com/lineage/config.toml`

const initShortDesc string = "Initialize a local .lineage/ directory"

type initCommander struct {
	preset string
}

func NewInitCmd() *cobra.Command {
	cmder := &initCommander{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: initShortDesc,
		Long:  initLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmder.run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&cmder.preset, "preset", "", "Config preset name ("+strings.Join(config.ValidPresetNames(), ", ")+") or URL")

	return cmd
}

func (c *initCommander) run(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Resolve the config before touching the filesystem so a bad preset
	// leaves nothing behind.
	cfg, err := c.resolveConfig(ctx)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	dir := filepath.Join(cwd, dotdir.DirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating .lineage directory: %w", err)
	}
	fmt.Fprintf(out, "  %s Initialized %s\n", cliui.SuccessMark, dir)

	configPath := filepath.Join(dir, configFile)
	written, err := writeIfMissing(configPath, func(w io.Writer) error {
		return toml.NewEncoder(w).Encode(cfg)
	})
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	report(out, configPath, written)

	targetsPath := filepath.Join(dir, dotdir.TargetsFile)
	written, err = writeIfMissing(targetsPath, func(w io.Writer) error {
		_, err := io.WriteString(w, targetsTemplate)
		return err
	})
	if err != nil {
		return fmt.Errorf("writing targets file: %w", err)
	}
	report(out, targetsPath, written)

	return nil
}

// resolveConfig returns the config for the preset: the defaults, a named
// preset or a remote config.toml.
func (c *initCommander) resolveConfig(ctx context.Context) (*config.Config, error) {
	switch {
	case c.preset == "":
		return config.NewDefaultConfig(), nil
	case strings.HasPrefix(c.preset, "http://") || strings.HasPrefix(c.preset, "https://"):
		return fetchConfig(ctx, c.preset)
	default:
		return config.PresetConfig(c.preset)
	}
}

// fetchConfig downloads and parses a remote config.toml.
func fetchConfig(ctx context.Context, url string) (*config.Config, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching preset: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching preset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching preset %s: unexpected status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteConfig))
	if err != nil {
		return nil, fmt.Errorf("reading preset: %w", err)
	}

	return config.ParseConfigTOML(data)
}

// writeIfMissing creates path with the content produced by write unless the
// file already exists. It reports whether the file was written.
func writeIfMissing(path string, write func(io.Writer) error) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := write(f); err != nil {
		f.Close()
		return false, err
	}
	return true, f.Close()
}

func report(out io.Writer, path string, written bool) {
	if written {
		fmt.Fprintf(out, "  %s Wrote %s\n", cliui.SuccessMark, path)
		return
	}
	fmt.Fprintf(out, "  %s Kept existing %s\n", cliui.WarnMark, path)
}
