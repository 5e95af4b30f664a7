// Package verifycmder provides the verify command, which validates the
// links of the lineage chain and re-derives the digests and signature of
// individual records.
package verifycmder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	showcmder "github.com/papercomputeco/lineage/cmd/lineage/show"
	"github.com/papercomputeco/lineage/cmd/lineage/render"
	"github.com/papercomputeco/lineage/cmd/lineage/stack"
	"github.com/papercomputeco/lineage/pkg/cliui"
	"github.com/papercomputeco/lineage/pkg/config"
	"github.com/papercomputeco/lineage/pkg/recorder"
	"github.com/papercomputeco/lineage/pkg/storage"
)

// ErrVerificationFailed is returned when the chain or a record does not
// verify.
var ErrVerificationFailed = errors.New("verification failed")

type verifyCommander struct {
	storage     string
	sqlitePath  string
	postgresDSN string

	asJSON bool
}

var verifyFlags = []string{
	config.FlagStorage,
	config.FlagSQLite,
	config.FlagPostgresDSN,
}

const verifyLongDesc string = `Verify the lineage chain.

Without arguments every record is checked: sequences must be contiguous
and each record's previous hash must equal its predecessor's chain hash.

With an execution id the record's content hash, Merkle root and chain link
are recomputed from the stored run, and its signature is checked with the
key from the configured signing key environment variable. Signatures made
without a key verify as undecidable.

Examples:
  lineage verify
  lineage verify 3f1c9a4e-6d8b-4f7e-9a52-1c2d3e4f5a6b`

const verifyShortDesc string = "Verify the lineage chain or a single record"

// recordResult is the JSON output for a single record.
type recordResult struct {
	Valid  bool            `json:"valid"`
	Report recorder.Report `json:"report"`
}

// chainResult is the JSON output for the whole chain.
type chainResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func NewVerifyCmd() *cobra.Command {
	cmder := &verifyCommander{}

	cmd := &cobra.Command{
		Use:   "verify [execution-id]",
		Short: verifyShortDesc,
		Long:  verifyLongDesc,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := stack.Bootstrap(cmd, verifyFlags)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				return cmder.runRecord(cmd, settings, args[0], cmd.OutOrStdout())
			}
			return cmder.runChain(cmd, settings, cmd.OutOrStdout())
		},
	}

	config.AddStringFlag(cmd, config.Flags, config.FlagStorage, &cmder.storage)
	config.AddStringFlag(cmd, config.Flags, config.FlagSQLite, &cmder.sqlitePath)
	config.AddStringFlag(cmd, config.Flags, config.FlagPostgresDSN, &cmder.postgresDSN)

	cmd.Flags().BoolVar(&cmder.asJSON, "json", false, "Print the verification result as JSON")

	return cmd
}

func (c *verifyCommander) runChain(cmd *cobra.Command, settings *stack.Settings, out io.Writer) error {
	ctx := cmd.Context()

	driver, err := settings.OpenStorage(ctx, stack.NewLogger(cmd))
	if err != nil {
		return err
	}
	defer driver.Close()

	verr := storage.ValidateChain(ctx, driver)

	var integrity *storage.ChainIntegrityError
	if verr != nil && !errors.As(verr, &integrity) {
		return verr
	}

	if c.asJSON {
		res := chainResult{Valid: verr == nil}
		if verr != nil {
			res.Error = verr.Error()
		}
		if err := json.NewEncoder(out).Encode(res); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "\n  %s chain %s\n\n", cliui.Mark(verr), chainVerdict(verr))
	}

	if verr != nil {
		return fmt.Errorf("%w: %w", ErrVerificationFailed, verr)
	}
	return nil
}

func (c *verifyCommander) runRecord(cmd *cobra.Command, settings *stack.Settings, id string, out io.Writer) error {
	ctx := cmd.Context()

	driver, err := settings.OpenStorage(ctx, stack.NewLogger(cmd))
	if err != nil {
		return err
	}
	defer driver.Close()

	rec, err := showcmder.Lookup(cmd, driver, id)
	if err != nil {
		return err
	}

	report, err := recorder.Verify(rec, settings.SigningKey())
	if err != nil {
		return err
	}

	if c.asJSON {
		if err := json.NewEncoder(out).Encode(recordResult{Valid: report.OK(), Report: report}); err != nil {
			return err
		}
	} else {
		render.Header(out, fmt.Sprintf("Record #%d %s", rec.Sequence, rec.ExecutionID))
		render.Report(out, report)
		fmt.Fprintln(out)
	}

	if !report.OK() {
		return ErrVerificationFailed
	}
	return nil
}

func chainVerdict(err error) string {
	if err == nil {
		return "valid"
	}
	return "invalid: " + err.Error()
}
