// Package configcmder provides the config command for managing persistent
// lineage configuration stored in the .lineage/ directory.
package configcmder

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/lineage/pkg/cliui"
	"github.com/papercomputeco/lineage/pkg/config"
)

const configLongDesc string = `Manage persistent lineage configuration.

Configuration is stored as config.toml in the .lineage/ directory and
provides default values for command flags. CLI flags and LINEAGE_*
environment variables always take precedence over config file values.

Keys use dotted notation matching the TOML section structure:
  storage.provider, storage.sqlite_path, storage.postgres_dsn, storage.cache_size,
  orchestrator.analyzer, orchestrator.max_concurrency, orchestrator.per_target_timeout,
  targets.file, attestation.signing_key_env,
  witness.endpoint, witness.timeout, witness.retries,
  eventstream.provider, eventstream.brokers, eventstream.topic,
  eventstream.nats_url, eventstream.subject,
  api.listen, github.api_url, github.token_env

Use subcommands to get, set, or list configuration values:
  lineage config set <key> <value>    Set a configuration value
  lineage config get <key>            Get a configuration value
  lineage config list                 List all configuration values

Examples:
  lineage config set orchestrator.max_concurrency 8
  lineage config set witness.endpoint https://witness.example.com
  lineage config get storage.provider
  lineage config list`

const configShortDesc string = "Manage persistent lineage configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}

// printTarget reports which config file a subcommand operates on.
func printTarget(cfger *config.Configer) {
	target := cfger.GetTarget()
	if target != "" {
		fmt.Printf("\n  %s %s\n\n",
			cliui.KeyStyle.Render("Config file:"),
			cliui.DimStyle.Render(target),
		)
		return
	}
	fmt.Printf("\n  %s\n\n", cliui.DimStyle.Render("No config file found. Using defaults."))
}

// validKeyArgs completes the first argument with the known config keys.
func validKeyArgs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return config.ValidConfigKeys(), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func checkKey(key string) error {
	if !config.IsValidConfigKey(key) {
		return fmt.Errorf("unknown config key: %q\n\nValid keys: %s",
			key, strings.Join(config.ValidConfigKeys(), ", "))
	}
	return nil
}
