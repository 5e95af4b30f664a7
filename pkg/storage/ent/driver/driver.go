// Package entdriver implements storage.Driver on top of the generated ent
// client. It is database-agnostic and is embedded by the sqlite and postgres
// drivers.
package entdriver

import (
	"context"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/storage"
	"github.com/papercomputeco/lineage/pkg/storage/ent"
	"github.com/papercomputeco/lineage/pkg/storage/ent/lineagerecord"
)

// EntDriver provides storage operations using an ent client.
type EntDriver struct {
	Client *ent.Client
}

// Commit appends rec and replaces the chain state inside one transaction.
func (ed *EntDriver) Commit(ctx context.Context, rec *lineage.Record, state *lineage.ChainState) error {
	if rec == nil {
		return storage.ErrNilRecord
	}
	if err := storage.CheckCommit(rec, state); err != nil {
		return err
	}

	return ed.withTx(ctx, func(tx *ent.Tx) error {
		if err := insertRecord(ctx, tx.Client(), rec); err != nil {
			return err
		}
		return replaceState(ctx, tx.Client(), state)
	})
}

// Append appends rec without touching the chain state.
func (ed *EntDriver) Append(ctx context.Context, rec *lineage.Record) error {
	if rec == nil {
		return storage.ErrNilRecord
	}

	return ed.withTx(ctx, func(tx *ent.Tx) error {
		return insertRecord(ctx, tx.Client(), rec)
	})
}

// Get retrieves a record by its execution id.
func (ed *EntDriver) Get(ctx context.Context, executionID string) (*lineage.Record, error) {
	row, err := ed.Client.LineageRecord.Get(ctx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.NotFoundError{ExecutionID: executionID}
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return decodeRecord(row.Body, row.Attestation)
}

// List returns up to limit records, most recent first.
func (ed *EntDriver) List(ctx context.Context, limit int) ([]*lineage.Record, error) {
	query := ed.Client.LineageRecord.Query().
		Order(lineagerecord.BySequence(entsql.OrderDesc()))
	if limit > 0 {
		query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	records := make([]*lineage.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := decodeRecord(row.Body, row.Attestation)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// LoadChainState returns the stored chain state, or the genesis state.
func (ed *EntDriver) LoadChainState(ctx context.Context) (*lineage.ChainState, error) {
	row, err := ed.Client.ChainState.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return lineage.NewChainState(), nil
		}
		return nil, fmt.Errorf("failed to load chain state: %w", err)
	}

	last, err := decodeSnapshot(row.Snapshot)
	if err != nil {
		return nil, err
	}

	return &lineage.ChainState{
		LastHash:        row.LastHash,
		LastSequence:    row.LastSequence,
		LastRunSnapshot: last,
	}, nil
}

// SaveChainState replaces the stored chain state.
func (ed *EntDriver) SaveChainState(ctx context.Context, state *lineage.ChainState) error {
	if state == nil {
		return errors.New("cannot save nil chain state")
	}

	return ed.withTx(ctx, func(tx *ent.Tx) error {
		return replaceState(ctx, tx.Client(), state)
	})
}

// Attest sets the attestation reference of a stored record once.
func (ed *EntDriver) Attest(ctx context.Context, executionID string, ref *lineage.AttestationReference) error {
	if ref == nil {
		return errors.New("cannot attest with nil reference")
	}

	encoded, err := encodeAttestation(ref)
	if err != nil {
		return err
	}

	// The nil check in the predicate makes the write-once rule hold even
	// when two attesters race.
	n, err := ed.Client.LineageRecord.Update().
		Where(
			lineagerecord.ID(executionID),
			lineagerecord.AttestationIsNil(),
		).
		SetAttestation(encoded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to attest record: %w", err)
	}
	if n == 1 {
		return nil
	}

	// Nothing updated: either the record is missing or it was attested.
	exists, err := ed.Client.LineageRecord.Query().
		Where(lineagerecord.ID(executionID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existence: %w", err)
	}
	if !exists {
		return storage.NotFoundError{ExecutionID: executionID}
	}
	return fmt.Errorf("%w: %s", storage.ErrAlreadyAttested, executionID)
}

// Close closes the database connection.
func (ed *EntDriver) Close() error {
	return ed.Client.Close()
}

// insertRecord checks append order and inserts rec.
func insertRecord(ctx context.Context, client *ent.Client, rec *lineage.Record) error {
	last, err := client.LineageRecord.Query().
		Order(lineagerecord.BySequence(entsql.OrderDesc())).
		First(ctx)
	var lastSequence int64
	switch {
	case err == nil:
		lastSequence = last.Sequence
	case !ent.IsNotFound(err):
		return fmt.Errorf("failed to read last sequence: %w", err)
	}
	if err := storage.CheckAppend(rec, lastSequence); err != nil {
		return err
	}

	exists, err := client.LineageRecord.Query().
		Where(lineagerecord.ID(rec.ExecutionID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existence: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: execution id %s already stored", storage.ErrConflict, rec.ExecutionID)
	}

	body, err := encodeRecord(rec)
	if err != nil {
		return err
	}

	err = client.LineageRecord.Create().
		SetID(rec.ExecutionID).
		SetSequence(rec.Sequence).
		SetRunID(rec.RunID).
		SetPreviousHash(rec.PreviousHash).
		SetChainHash(rec.ChainHash).
		SetRecordedAt(rec.Timestamp.UTC()).
		SetBody(body).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("%w: %v", storage.ErrConflict, err)
		}
		return fmt.Errorf("failed to insert record: %w", err)
	}

	return nil
}

// replaceState keeps exactly one chain state row.
func replaceState(ctx context.Context, client *ent.Client, state *lineage.ChainState) error {
	snapshot, err := encodeSnapshot(state.LastRunSnapshot)
	if err != nil {
		return err
	}

	if _, err := client.ChainState.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear chain state: %w", err)
	}

	err = client.ChainState.Create().
		SetLastHash(state.LastHash).
		SetLastSequence(state.LastSequence).
		SetNillableSnapshot(snapshot).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save chain state: %w", err)
	}

	return nil
}

// withTx runs fn in a transaction, rolling back on error.
func (ed *EntDriver) withTx(ctx context.Context, fn func(tx *ent.Tx) error) error {
	tx, err := ed.Client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
