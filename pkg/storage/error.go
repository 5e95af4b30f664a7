package storage

import (
	"errors"
	"fmt"

	"github.com/papercomputeco/lineage/pkg/lineage"
)

var (
	// ErrConflict is returned when an append would overwrite an existing
	// record or break the append order.
	ErrConflict = errors.New("append conflict")

	// ErrAlreadyAttested is returned when a record's attestation reference has
	// already been written.
	ErrAlreadyAttested = errors.New("record already attested")

	// ErrNilRecord is returned when asked to store a nil record.
	ErrNilRecord = errors.New("cannot store nil record")
)

// NotFoundError is returned when a record doesn't exist in the store.
type NotFoundError struct {
	ExecutionID string
}

func (e NotFoundError) Error() string {
	if e.ExecutionID == "" {
		return "record not found"
	}

	return "record not found: " + e.ExecutionID
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// ChainIntegrityError reports a record that breaks the hash chain. It is never
// repaired automatically.
type ChainIntegrityError struct {
	Sequence    int64
	ExecutionID string
	Reason      string
}

func (e *ChainIntegrityError) Error() string {
	return fmt.Sprintf("chain integrity violation at sequence %d (%s): %s", e.Sequence, e.ExecutionID, e.Reason)
}

// CheckAppend validates that rec may be appended after a chain whose last
// stored sequence is lastSequence. Drivers call it while holding their write
// lock or inside their transaction.
func CheckAppend(rec *lineage.Record, lastSequence int64) error {
	if rec == nil {
		return ErrNilRecord
	}
	if rec.ExecutionID == "" {
		return fmt.Errorf("%w: record has no execution id", ErrConflict)
	}
	if want := lastSequence + 1; rec.Sequence != want {
		return fmt.Errorf("%w: sequence %d does not follow %d", ErrConflict, rec.Sequence, lastSequence)
	}
	return nil
}

// CheckCommit validates that state is the chain state produced by appending
// rec.
func CheckCommit(rec *lineage.Record, state *lineage.ChainState) error {
	if state == nil {
		return errors.New("cannot commit nil chain state")
	}
	if state.LastSequence != rec.Sequence {
		return fmt.Errorf("chain state sequence %d does not match record sequence %d", state.LastSequence, rec.Sequence)
	}
	if state.LastHash != rec.ChainHash {
		return fmt.Errorf("chain state hash %q does not match record chain hash %q", state.LastHash, rec.ChainHash)
	}
	return nil
}
