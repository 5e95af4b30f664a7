// Package render prints lineage records and run results for the CLI.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/papercomputeco/lineage/pkg/cliui"
	"github.com/papercomputeco/lineage/pkg/delta"
	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/recorder"
	"github.com/papercomputeco/lineage/pkg/run"
	"github.com/papercomputeco/lineage/pkg/utils"
)

// maxErrorLen caps target errors in tables.
const maxErrorLen = 60

// Result prints one line per target result.
func Result(w io.Writer, result *run.Result) {
	for _, t := range result.Targets {
		line := fmt.Sprintf("  %s %s  %s",
			cliui.StatusMark(string(t.Status)),
			t.TargetID,
			cliui.DimStyle.Render(cliui.FormatDuration(t.Duration())),
		)
		if t.Error != "" {
			line += "  " + cliui.DimStyle.Render(utils.Truncate(t.Error, maxErrorLen))
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "\n  %s %d total, %d succeeded, %d failed\n",
		cliui.KeyStyle.Render("Summary:"),
		result.Summary.Total, result.Summary.Succeeded, result.Summary.Failed,
	)
}

// Record prints the digests, delta and attestation of rec.
func Record(w io.Writer, rec *lineage.Record) {
	field(w, "Execution", rec.ExecutionID)
	field(w, "Sequence", fmt.Sprintf("%d", rec.Sequence))
	field(w, "Run", rec.RunID)
	field(w, "Timestamp", rec.Timestamp.Format(time.RFC3339))
	field(w, "Previous", cliui.HashStyle.Render(cliui.ShortHash(rec.PreviousHash)))
	field(w, "Content", cliui.HashStyle.Render(cliui.ShortHash(rec.CurrentHash)))
	field(w, "Chain", cliui.HashStyle.Render(cliui.ShortHash(rec.ChainHash)))
	field(w, "Merkle root", cliui.HashStyle.Render(cliui.ShortHash(rec.MerkleRoot)))
	field(w, "Signature", rec.Signature.Algorithm)
	field(w, "Attestation", Attestation(rec.AttestationReference))
	field(w, "Delta", DeltaSummary(rec.Delta))
}

// Delta prints every change of d.
func Delta(w io.Writer, d delta.Delta) {
	if d.IsEmpty() {
		fmt.Fprintf(w, "  %s\n", cliui.DimStyle.Render("no changes"))
		return
	}

	for _, t := range d.AddedTargets {
		fmt.Fprintf(w, "  + %s\n", t)
	}
	for _, t := range d.RemovedTargets {
		fmt.Fprintf(w, "  - %s\n", t)
	}
	for _, m := range d.ModifiedTargets {
		fmt.Fprintf(w, "  ~ %s\n", m.TargetID)
		for _, c := range m.FieldChanges {
			fmt.Fprintf(w, "      %s %s: %v -> %v\n",
				cliui.DimStyle.Render(string(c.ChangeKind)), c.Field, c.PreviousValue, c.CurrentValue)
		}
	}
}

// DeltaSummary counts the changes of d.
func DeltaSummary(d delta.Delta) string {
	if d.IsEmpty() {
		return "no changes"
	}
	return fmt.Sprintf("+%d -%d ~%d", len(d.AddedTargets), len(d.RemovedTargets), len(d.ModifiedTargets))
}

// Attestation describes a witnessing outcome.
func Attestation(ref *lineage.AttestationReference) string {
	if ref == nil {
		return "pending"
	}
	switch {
	case ref.RemoteID != "":
		return fmt.Sprintf("%s (%s)", ref.Status, ref.RemoteID)
	case ref.Error != "":
		return fmt.Sprintf("%s (%s)", ref.Status, utils.Truncate(ref.Error, maxErrorLen))
	default:
		return ref.Status
	}
}

// History prints one line per record, newest first.
func History(w io.Writer, records []*lineage.Record) {
	if len(records) == 0 {
		fmt.Fprintf(w, "  %s\n", cliui.DimStyle.Render("No records yet."))
		return
	}

	for _, rec := range records {
		fmt.Fprintf(w, "  %s  %s  %s  %s  %s\n",
			cliui.KeyStyle.Render(fmt.Sprintf("#%-4d", rec.Sequence)),
			rec.Timestamp.Format(time.RFC3339),
			cliui.HashStyle.Render(cliui.ShortHash(rec.ChainHash)),
			rec.ExecutionID,
			cliui.DimStyle.Render(DeltaSummary(rec.Delta)),
		)
	}
}

// Report prints a verification report.
func Report(w io.Writer, r recorder.Report) {
	check := func(name string, ok bool) {
		mark := cliui.SuccessMark
		if !ok {
			mark = cliui.FailMark
		}
		fmt.Fprintf(w, "  %s %s\n", mark, name)
	}

	check("content hash", r.ContentHash)
	check("merkle root", r.MerkleRoot)
	check("chain link", r.ChainLink)

	fmt.Fprintf(w, "  %s signature %s\n", cliui.StatusMark(r.Signature.String()), r.Signature)
}

func field(w io.Writer, key, value string) {
	fmt.Fprintf(w, "  %s %s\n", cliui.KeyStyle.Render(fmt.Sprintf("%-12s", key+":")), value)
}

// Header prints a blank-padded section title.
func Header(w io.Writer, title string) {
	fmt.Fprintf(w, "\n  %s\n\n", cliui.StepStyle.Render(strings.TrimSpace(title)))
}
