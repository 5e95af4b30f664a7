package stack

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/lineage/pkg/config"
	"github.com/papercomputeco/lineage/pkg/dotdir"
	"github.com/papercomputeco/lineage/pkg/logger"
)

// Bootstrap layers the config file, LINEAGE_* environment and the registered
// flags named by flagKeys into Settings for cmd. The persistent --config-dir
// flag selects the .lineage directory.
func Bootstrap(cmd *cobra.Command, flagKeys []string) (*Settings, error) {
	configDir, _ := cmd.Flags().GetString("config-dir")

	v, err := config.InitViper(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	config.BindRegisteredFlags(v, cmd, config.Flags, flagKeys)

	return Load(v, configDir)
}

// NewLogger returns the CLI logger. It writes the pretty format to stderr so
// command output on stdout stays clean.
func NewLogger(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	return logger.New(
		logger.WithDebug(debug),
		logger.WithFormat(logger.FormatPretty),
		logger.WithWriter(os.Stderr),
	)
}

// NewRunLogger returns the CLI logger teed with a JSON logger appending to the
// run log in the .lineage directory. The returned closer closes the log file.
func NewRunLogger(cmd *cobra.Command, configDir string) (*slog.Logger, io.Closer, error) {
	path, err := dotdir.NewManager().RunLogPath(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving run log: %w", err)
	}

	debug, _ := cmd.Flags().GetBool("debug")
	fileLog, closer, err := logger.OpenRunLog(path,
		logger.WithDebug(debug),
		logger.WithSource(debug),
	)
	if err != nil {
		return nil, nil, err
	}

	return logger.Tee(NewLogger(cmd), fileLog), closer, nil
}
