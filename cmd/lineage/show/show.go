// Package showcmder provides the show command, which prints one lineage
// record with its delta and target results.
package showcmder

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/lineage/cmd/lineage/render"
	"github.com/papercomputeco/lineage/cmd/lineage/stack"
	"github.com/papercomputeco/lineage/pkg/config"
	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/storage"
)

type showCommander struct {
	storage     string
	sqlitePath  string
	postgresDSN string

	asJSON bool
}

var showFlags = []string{
	config.FlagStorage,
	config.FlagSQLite,
	config.FlagPostgresDSN,
}

const showLongDesc string = `Show one lineage record.

Prints the record's digests, signature and attestation outcome, the changes
against the previous run and the result of every target. Without an
execution id the most recent record is shown.

Examples:
  lineage show
  lineage show 3f1c9a4e-6d8b-4f7e-9a52-1c2d3e4f5a6b --json`

const showShortDesc string = "Show a lineage record"

func NewShowCmd() *cobra.Command {
	cmder := &showCommander{}

	cmd := &cobra.Command{
		Use:   "show [execution-id]",
		Short: showShortDesc,
		Long:  showLongDesc,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := stack.Bootstrap(cmd, showFlags)
			if err != nil {
				return err
			}

			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			return cmder.run(cmd, settings, id, cmd.OutOrStdout())
		},
	}

	config.AddStringFlag(cmd, config.Flags, config.FlagStorage, &cmder.storage)
	config.AddStringFlag(cmd, config.Flags, config.FlagSQLite, &cmder.sqlitePath)
	config.AddStringFlag(cmd, config.Flags, config.FlagPostgresDSN, &cmder.postgresDSN)

	cmd.Flags().BoolVar(&cmder.asJSON, "json", false, "Print the record as JSON")

	return cmd
}

func (c *showCommander) run(cmd *cobra.Command, settings *stack.Settings, id string, out io.Writer) error {
	ctx := cmd.Context()

	driver, err := settings.OpenStorage(ctx, stack.NewLogger(cmd))
	if err != nil {
		return err
	}
	defer driver.Close()

	rec, err := Lookup(cmd, driver, id)
	if err != nil {
		return err
	}

	if c.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	render.Header(out, "Record")
	render.Record(out, rec)
	render.Header(out, "Changes")
	render.Delta(out, rec.Delta)
	if rec.Run != nil {
		render.Header(out, "Targets")
		render.Result(out, rec.Run)
	}
	fmt.Fprintln(out)
	return nil
}

// Lookup returns the record with the given execution id, or the most recent
// record when id is empty.
func Lookup(cmd *cobra.Command, driver storage.Driver, id string) (*lineage.Record, error) {
	ctx := cmd.Context()

	if id != "" {
		rec, err := driver.Get(ctx, id)
		if err != nil {
			if storage.IsNotFound(err) {
				return nil, fmt.Errorf("no record with execution id %q", id)
			}
			return nil, err
		}
		return rec, nil
	}

	records, err := driver.List(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("the lineage chain is empty")
	}
	return records[0], nil
}
