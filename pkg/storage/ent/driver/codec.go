package entdriver

import (
	"encoding/json"
	"fmt"

	"github.com/papercomputeco/lineage/pkg/hashchain"
	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/run"
)

// encodeRecord returns the canonical JSON body of rec. The attestation
// reference is stored in its own column and is never part of the body.
func encodeRecord(rec *lineage.Record) (string, error) {
	body := rec.Clone()
	body.AttestationReference = nil

	b, err := hashchain.CanonicalBytes(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode record: %w", err)
	}
	return string(b), nil
}

func decodeRecord(body string, attestation *string) (*lineage.Record, error) {
	rec := &lineage.Record{}
	if err := json.Unmarshal([]byte(body), rec); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}

	if attestation != nil {
		ref := &lineage.AttestationReference{}
		if err := json.Unmarshal([]byte(*attestation), ref); err != nil {
			return nil, fmt.Errorf("failed to decode attestation reference: %w", err)
		}
		rec.AttestationReference = ref
	}

	return rec, nil
}

func encodeAttestation(ref *lineage.AttestationReference) (string, error) {
	b, err := hashchain.CanonicalBytes(ref)
	if err != nil {
		return "", fmt.Errorf("failed to encode attestation reference: %w", err)
	}
	return string(b), nil
}

// encodeSnapshot returns nil for a nil snapshot so the column stays NULL.
func encodeSnapshot(snapshot *run.Result) (*string, error) {
	if snapshot == nil {
		return nil, nil
	}
	b, err := hashchain.CanonicalBytes(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode run snapshot: %w", err)
	}
	encoded := string(b)
	return &encoded, nil
}

func decodeSnapshot(snapshot *string) (*run.Result, error) {
	if snapshot == nil {
		return nil, nil
	}
	r := &run.Result{}
	if err := json.Unmarshal([]byte(*snapshot), r); err != nil {
		return nil, fmt.Errorf("failed to decode run snapshot: %w", err)
	}
	return r, nil
}
