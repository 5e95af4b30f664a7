package storage

import (
	"context"
	"fmt"
	"slices"

	"github.com/papercomputeco/lineage/pkg/hashchain"
	"github.com/papercomputeco/lineage/pkg/lineage"
)

// ValidateChain walks every record of d in append order and checks that the
// chain is intact: the first record links to genesis, each chain hash is the
// link of its previous and current hash, each record's previous hash is its
// predecessor's chain hash and sequences are contiguous from 1.
//
// The first violation is returned as a *ChainIntegrityError. ValidateChain
// never modifies the store.
func ValidateChain(ctx context.Context, d Driver) error {
	records, err := d.List(ctx, 0)
	if err != nil {
		return fmt.Errorf("listing records: %w", err)
	}

	// List is most recent first.
	slices.Reverse(records)
	return ValidateRecords(records)
}

// ValidateRecords checks the chain invariants over records given in append
// order.
func ValidateRecords(records []*lineage.Record) error {
	previous := hashchain.Genesis
	for i, rec := range records {
		fail := func(format string, args ...any) error {
			return &ChainIntegrityError{
				Sequence:    rec.Sequence,
				ExecutionID: rec.ExecutionID,
				Reason:      fmt.Sprintf(format, args...),
			}
		}

		if want := int64(i + 1); rec.Sequence != want {
			return fail("expected sequence %d", want)
		}

		if rec.PreviousHash != previous {
			if i == 0 {
				return fail("first record does not link to genesis")
			}
			return fail("previous hash %s does not match predecessor chain hash %s", rec.PreviousHash, previous)
		}

		link, err := hashchain.ChainLink(rec.PreviousHash, rec.CurrentHash)
		if err != nil {
			return fail("computing chain link: %v", err)
		}
		if link != rec.ChainHash {
			return fail("chain hash %s does not match link %s", rec.ChainHash, link)
		}

		previous = rec.ChainHash
	}

	return nil
}
