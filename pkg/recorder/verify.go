package recorder

import (
	"errors"
	"fmt"

	"github.com/papercomputeco/lineage/pkg/attest"
	"github.com/papercomputeco/lineage/pkg/hashchain"
	"github.com/papercomputeco/lineage/pkg/lineage"
)

// ErrNoRun is returned when verifying a record that carries no run result.
var ErrNoRun = errors.New("record has no run result")

// Report is the outcome of re-deriving a record's digests and signature.
type Report struct {
	ExecutionID string `json:"execution_id"`

	// ContentHash reports whether current_hash matches the run.
	ContentHash bool `json:"content_hash"`

	// MerkleRoot reports whether merkle_root matches the run's targets.
	MerkleRoot bool `json:"merkle_root"`

	// ChainLink reports whether chain_hash links previous_hash and current_hash.
	ChainLink bool `json:"chain_link"`

	Signature attest.Verification `json:"signature"`
}

// OK reports whether nothing contradicts the record. An undecidable
// signature does not contradict it.
func (r Report) OK() bool {
	return r.ContentHash && r.MerkleRoot && r.ChainLink && r.Signature != attest.Invalid
}

// Verify recomputes every digest of rec from its run and verifies its
// signature under key. It checks the record in isolation; use
// storage.ValidateChain for the links between records.
func Verify(rec *lineage.Record, key []byte) (Report, error) {
	if rec == nil {
		return Report{}, errors.New("cannot verify nil record")
	}
	if rec.Run == nil {
		return Report{ExecutionID: rec.ExecutionID}, ErrNoRun
	}

	report := Report{ExecutionID: rec.ExecutionID}

	contentHash, err := hashchain.CanonicalHash(rec.Run)
	if err != nil {
		return report, fmt.Errorf("hashing run: %w", err)
	}
	report.ContentHash = contentHash == rec.CurrentHash

	merkleRoot, err := hashchain.MerkleRoot(rec.Run.Targets)
	if err != nil {
		return report, fmt.Errorf("computing merkle root: %w", err)
	}
	report.MerkleRoot = merkleRoot == rec.MerkleRoot

	link, err := hashchain.ChainLink(rec.PreviousHash, rec.CurrentHash)
	if err != nil {
		return report, fmt.Errorf("computing chain link: %w", err)
	}
	report.ChainLink = link == rec.ChainHash

	report.Signature = attest.Verify(SignedContent{
		Run:        rec.Run,
		Delta:      rec.Delta,
		MerkleRoot: rec.MerkleRoot,
	}, rec.Signature, key)

	return report, nil
}
