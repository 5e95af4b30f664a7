package eventstream

import (
	"time"

	"github.com/google/uuid"

	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/run"
)

const (
	// SchemaVersionV1 is the first version of the event payload schema.
	SchemaVersionV1 = 1

	// EventTypeRecordAppended is emitted after a lineage record is persisted.
	EventTypeRecordAppended = "lineage.record.appended"
)

// RecordAppendedEvent is a transport-neutral event payload for a persisted
// lineage record.
type RecordAppendedEvent struct {
	SchemaVersion int             `json:"schema_version"`
	EventType     string          `json:"event_type"`
	EventID       string          `json:"event_id"`
	EmittedAt     time.Time       `json:"emitted_at"`
	Record        RecordMeta      `json:"record"`
	Summary       run.Summary     `json:"summary"`
	Delta         DeltaMeta       `json:"delta"`
	Attestation   AttestationMeta `json:"attestation"`
}

// RecordMeta captures the chain position and digests of the record.
type RecordMeta struct {
	ExecutionID        string    `json:"execution_id"`
	Sequence           int64     `json:"sequence"`
	RunID              string    `json:"run_id"`
	Timestamp          time.Time `json:"timestamp"`
	PreviousHash       string    `json:"previous_hash"`
	CurrentHash        string    `json:"current_hash"`
	ChainHash          string    `json:"chain_hash"`
	MerkleRoot         string    `json:"merkle_root"`
	SignatureAlgorithm string    `json:"signature_algorithm"`
}

// DeltaMeta counts the changes against the previous run.
type DeltaMeta struct {
	Added    int          `json:"added"`
	Removed  int          `json:"removed"`
	Modified int          `json:"modified"`
	Targets  []run.Target `json:"modified_targets,omitempty"`
}

// AttestationMeta captures the witness outcome of the record.
type AttestationMeta struct {
	Status   string `json:"status"`
	RemoteID string `json:"remote_id,omitempty"`
}

// NewRecordAppendedEvent builds the event for rec, the record of a run with
// the given summary.
func NewRecordAppendedEvent(rec *lineage.Record, summary run.Summary) *RecordAppendedEvent {
	event := &RecordAppendedEvent{
		SchemaVersion: SchemaVersionV1,
		EventType:     EventTypeRecordAppended,
		EventID:       uuid.NewString(),
		EmittedAt:     time.Now().UTC(),
		Record: RecordMeta{
			ExecutionID:        rec.ExecutionID,
			Sequence:           rec.Sequence,
			RunID:              rec.RunID,
			Timestamp:          rec.Timestamp,
			PreviousHash:       rec.PreviousHash,
			CurrentHash:        rec.CurrentHash,
			ChainHash:          rec.ChainHash,
			MerkleRoot:         rec.MerkleRoot,
			SignatureAlgorithm: rec.Signature.Algorithm,
		},
		Summary: summary,
		Delta: DeltaMeta{
			Added:    len(rec.Delta.AddedTargets),
			Removed:  len(rec.Delta.RemovedTargets),
			Modified: len(rec.Delta.ModifiedTargets),
		},
		Attestation: AttestationMeta{Status: lineage.AttestationLocalOnly},
	}

	for _, tc := range rec.Delta.ModifiedTargets {
		event.Delta.Targets = append(event.Delta.Targets, tc.TargetID)
	}

	if ref := rec.AttestationReference; ref != nil {
		event.Attestation = AttestationMeta{Status: ref.Status, RemoteID: ref.RemoteID}
	}

	return event
}
