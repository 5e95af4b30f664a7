package recorder

import (
	"errors"
	"fmt"
)

// Phase is a step of a Record call.
type Phase string

const (
	PhaseLoadingState   Phase = "LOADING_STATE"
	PhaseComputingDelta Phase = "COMPUTING_DELTA"
	PhaseHashing        Phase = "HASHING"
	PhaseSigning        Phase = "SIGNING"
	PhasePersisting     Phase = "PERSISTING"
	PhaseWitnessing     Phase = "WITNESSING"
	PhaseDone           Phase = "DONE"
	PhaseFailed         Phase = "FAILED"
)

// ErrInvalidRun is returned for run results that fail validation. Nothing is
// loaded or written for them.
var ErrInvalidRun = errors.New("invalid run result")

// PhaseError reports the phase in which a Record call failed. When it is
// returned no record was persisted and the chain state is unchanged.
type PhaseError struct {
	Phase Phase
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("lineage recording failed in %s: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}
