// Package witness submits lineage records to an external attestation service
// that independently timestamps and stores them.
//
// Witnessing is best-effort: every outcome, including network errors and
// timeouts, is reported as a Result and never as an error.
package witness

import (
	"context"

	"github.com/papercomputeco/lineage/pkg/lineage"
)

// Status is the outcome of a submission.
type Status string

const (
	// StatusSuccess means the witness accepted the record.
	StatusSuccess Status = "success"

	// StatusFailed means the record could not be witnessed.
	StatusFailed Status = "failed"

	// StatusSkipped means witnessing is disabled.
	StatusSkipped Status = "skipped"
)

// Result is the outcome of submitting one record.
type Result struct {
	Status Status

	// RemoteID is the id assigned by the witness, if it returned one.
	RemoteID string

	// Err is set when Status is StatusFailed.
	Err error
}

// Witness submits records to an external service. Submit must return within
// a bounded time and must never panic.
type Witness interface {
	Submit(ctx context.Context, rec *lineage.Record) Result
}
