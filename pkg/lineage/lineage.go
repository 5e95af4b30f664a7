// Package lineage defines the records of the append-only audit chain and the
// chain state used to extend it.
package lineage

import (
	"time"

	"github.com/papercomputeco/lineage/pkg/attest"
	"github.com/papercomputeco/lineage/pkg/delta"
	"github.com/papercomputeco/lineage/pkg/hashchain"
	"github.com/papercomputeco/lineage/pkg/run"
)

// Attestation statuses stored in AttestationReference.Status.
const (
	// AttestationWitnessed means the external witness accepted the record.
	AttestationWitnessed = "witnessed"

	// AttestationLocalOnly means the record exists only in local storage,
	// either because no witness is configured or because submission failed.
	AttestationLocalOnly = "local_only"
)

// AttestationReference is the outcome of submitting a record to the external
// witness.
type AttestationReference struct {
	Status      string    `json:"status"`
	RemoteID    string    `json:"remote_id,omitempty"`
	Error       string    `json:"error,omitempty"`
	WitnessedAt time.Time `json:"witnessed_at"`
}

// Record is one link of the audit chain. It is created exactly once per run
// result and never mutated after it is persisted, with the single exception
// of AttestationReference which is filled once after witnessing.
type Record struct {
	// ExecutionID is the globally unique id of this record.
	ExecutionID string `json:"execution_id"`

	// Sequence is the 1-based position of the record in append order.
	Sequence int64 `json:"sequence"`

	// RunID is the id of the run result this record attests.
	RunID string `json:"run_id"`

	// Run is the attested run result. Keeping it on the record lets every
	// digest and the signature be recomputed from the record alone.
	Run *run.Result `json:"run,omitempty"`

	Timestamp time.Time `json:"timestamp"`

	// PreviousHash is the ChainHash of the preceding record, or
	// hashchain.Genesis for the first record.
	PreviousHash string `json:"previous_hash"`

	// CurrentHash is the canonical hash of the run result.
	CurrentHash string `json:"current_hash"`

	// ChainHash is hashchain.ChainLink(PreviousHash, CurrentHash) and is what
	// the next record stores as its PreviousHash.
	ChainHash string `json:"chain_hash"`

	// MerkleRoot is the aggregate digest over the run's target results.
	MerkleRoot string `json:"merkle_root"`

	Delta     delta.Delta      `json:"delta"`
	Signature attest.Signature `json:"signature"`

	AttestationReference *AttestationReference `json:"attestation_reference"`
}

// IsGenesis reports whether the record opens a chain.
func (r *Record) IsGenesis() bool {
	return r.PreviousHash == hashchain.Genesis
}

// ChainState is the durable pointer to the tip of the chain: the last
// record's chain hash and sequence plus the run snapshot the next delta is
// computed against.
type ChainState struct {
	LastHash        string      `json:"last_hash"`
	LastSequence    int64       `json:"last_sequence"`
	LastRunSnapshot *run.Result `json:"last_run_snapshot"`
}

// NewChainState returns the state of an empty chain.
func NewChainState() *ChainState {
	return &ChainState{LastHash: hashchain.Genesis}
}

// IsEmpty reports whether no record has been appended yet.
func (s *ChainState) IsEmpty() bool {
	return s == nil || s.LastSequence == 0
}

// Clone returns a copy of the record safe to hand to callers. The run and
// the delta are shared; records are treated as immutable.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	if r.AttestationReference != nil {
		ref := *r.AttestationReference
		c.AttestationReference = &ref
	}
	return &c
}
