// Package historycmder provides the history command, which lists the most
// recent lineage records.
package historycmder

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/lineage/cmd/lineage/render"
	"github.com/papercomputeco/lineage/cmd/lineage/stack"
	"github.com/papercomputeco/lineage/pkg/config"
)

type historyCommander struct {
	storage     string
	sqlitePath  string
	postgresDSN string

	limit  int
	asJSON bool
}

var historyFlags = []string{
	config.FlagStorage,
	config.FlagSQLite,
	config.FlagPostgresDSN,
}

const historyLongDesc string = `List the most recent lineage records, newest first.

Each line shows the record sequence, its timestamp, the abbreviated chain
hash, the execution id and a summary of the delta against the previous run.

Examples:
  lineage history
  lineage history --limit 5 --json`

const historyShortDesc string = "List recent lineage records"

func NewHistoryCmd() *cobra.Command {
	cmder := &historyCommander{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: historyShortDesc,
		Long:  historyLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmder.limit < 1 {
				return fmt.Errorf("--limit must be at least 1, got %d", cmder.limit)
			}

			settings, err := stack.Bootstrap(cmd, historyFlags)
			if err != nil {
				return err
			}

			return cmder.run(cmd, settings, cmd.OutOrStdout())
		},
	}

	config.AddStringFlag(cmd, config.Flags, config.FlagStorage, &cmder.storage)
	config.AddStringFlag(cmd, config.Flags, config.FlagSQLite, &cmder.sqlitePath)
	config.AddStringFlag(cmd, config.Flags, config.FlagPostgresDSN, &cmder.postgresDSN)

	cmd.Flags().IntVarP(&cmder.limit, "limit", "n", 20, "Maximum number of records to list")
	cmd.Flags().BoolVar(&cmder.asJSON, "json", false, "Print the records as JSON")

	return cmd
}

func (c *historyCommander) run(cmd *cobra.Command, settings *stack.Settings, out io.Writer) error {
	ctx := cmd.Context()
	log := stack.NewLogger(cmd)

	driver, err := settings.OpenStorage(ctx, log)
	if err != nil {
		return err
	}
	defer driver.Close()

	records, err := driver.List(ctx, c.limit)
	if err != nil {
		return fmt.Errorf("listing records: %w", err)
	}

	if c.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	render.Header(out, fmt.Sprintf("Lineage history (%d)", len(records)))
	render.History(out, records)
	fmt.Fprintln(out)
	return nil
}
