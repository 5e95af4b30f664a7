// Package storage defines the append-only store for lineage records and the
// chain state that points at the tip of the chain.
package storage

import (
	"context"

	"github.com/papercomputeco/lineage/pkg/lineage"
)

// Driver defines the interface for persisting and retrieving lineage records
// in a storage backend.
//
// Records are append-only: a driver never overwrites or deletes a record. The
// only field that may be written after a record is appended is its
// attestation reference, and only once.
type Driver interface {
	// Commit appends rec and replaces the chain state with state as one atomic
	// unit. Either both become visible or neither does.
	Commit(ctx context.Context, rec *lineage.Record, state *lineage.ChainState) error

	// Append appends rec without touching the chain state. The record's
	// sequence must directly follow the last stored sequence and its execution
	// id must be new, otherwise ErrConflict is returned.
	Append(ctx context.Context, rec *lineage.Record) error

	// Get retrieves a record by its execution id.
	Get(ctx context.Context, executionID string) (*lineage.Record, error)

	// List returns up to limit records, most recent first. A limit <= 0
	// returns every record.
	List(ctx context.Context, limit int) ([]*lineage.Record, error)

	// LoadChainState returns the stored chain state, or the genesis state when
	// nothing has been committed yet.
	LoadChainState(ctx context.Context) (*lineage.ChainState, error)

	// SaveChainState replaces the stored chain state.
	SaveChainState(ctx context.Context, state *lineage.ChainState) error

	// Attest sets the attestation reference of a stored record. It fails with
	// ErrAlreadyAttested if the reference was already set.
	Attest(ctx context.Context, executionID string, ref *lineage.AttestationReference) error

	// Close closes the store and releases any resources.
	Close() error
}
