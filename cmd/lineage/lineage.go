// Package lineagecmder
package lineagecmder

import (
	"github.com/spf13/cobra"

	configcmder "github.com/papercomputeco/lineage/cmd/lineage/config"
	historycmder "github.com/papercomputeco/lineage/cmd/lineage/history"
	initcmder "github.com/papercomputeco/lineage/cmd/lineage/init"
	runcmder "github.com/papercomputeco/lineage/cmd/lineage/run"
	servecmder "github.com/papercomputeco/lineage/cmd/lineage/serve"
	showcmder "github.com/papercomputeco/lineage/cmd/lineage/show"
	verifycmder "github.com/papercomputeco/lineage/cmd/lineage/verify"
	versioncmder "github.com/papercomputeco/lineage/cmd/version"
)

const lineageLongDesc string = `Lineage keeps a tamper-evident audit chain of repository analysis runs.

Every run analyzes a set of targets concurrently, diffs the outcome against
the previous run and appends a hashed, signed record to the chain:
  lineage run owner/repo ...    Analyze targets and append a record
  lineage history               List the most recent records
  lineage show <id>             Show one record and its delta
  lineage verify [id]           Validate the chain or a single record
  lineage serve                 Run the read-only API server`

const lineageShortDesc string = "Lineage - Tamper-evident analysis history"

func NewLineageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "lineage",
		Short:        lineageShortDesc,
		Long:         lineageLongDesc,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override path to .lineage/ config directory")

	// Add subcommands
	cmd.AddCommand(initcmder.NewInitCmd())
	cmd.AddCommand(runcmder.NewRunCmd())
	cmd.AddCommand(historycmder.NewHistoryCmd())
	cmd.AddCommand(showcmder.NewShowCmd())
	cmd.AddCommand(verifycmder.NewVerifyCmd())
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
