// Package nop provides a Witness that does nothing, used when no witness
// endpoint is configured.
package nop

import (
	"context"

	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/witness"
)

// Witness skips every submission.
type Witness struct{}

// NewWitness returns a disabled witness.
func NewWitness() *Witness {
	return &Witness{}
}

// Submit reports the submission as skipped.
func (*Witness) Submit(context.Context, *lineage.Record) witness.Result {
	return witness.Result{Status: witness.StatusSkipped}
}

var _ witness.Witness = (*Witness)(nil)
