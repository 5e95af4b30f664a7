// Package inmemory provides a storage.Driver that keeps records in process
// memory. It is used for tests and for one-shot runs that do not need history.
package inmemory

import (
	"context"
	"fmt"
	"sync"

	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/storage"
)

// Driver implements storage.Driver using an in-memory slice.
type Driver struct {
	// mu guards records, index and state
	mu sync.RWMutex

	// records is the append-ordered list of records
	records []*lineage.Record

	// index maps execution ids to positions in records
	index map[string]int

	state *lineage.ChainState
}

// NewDriver creates a new in-memory store.
func NewDriver() *Driver {
	return &Driver{
		index: make(map[string]int),
		state: lineage.NewChainState(),
	}
}

// Commit appends rec and replaces the chain state under a single lock.
func (d *Driver) Commit(_ context.Context, rec *lineage.Record, state *lineage.ChainState) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkAppend(rec); err != nil {
		return err
	}
	if err := storage.CheckCommit(rec, state); err != nil {
		return err
	}

	d.append(rec)
	d.state = cloneState(state)
	return nil
}

// Append appends rec without touching the chain state.
func (d *Driver) Append(_ context.Context, rec *lineage.Record) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.checkAppend(rec); err != nil {
		return err
	}

	d.append(rec)
	return nil
}

// Get retrieves a record by its execution id.
func (d *Driver) Get(_ context.Context, executionID string) (*lineage.Record, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i, ok := d.index[executionID]
	if !ok {
		return nil, storage.NotFoundError{ExecutionID: executionID}
	}

	return d.records[i].Clone(), nil
}

// List returns up to limit records, most recent first.
func (d *Driver) List(_ context.Context, limit int) ([]*lineage.Record, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n := len(d.records)
	if limit > 0 && limit < n {
		n = limit
	}

	result := make([]*lineage.Record, 0, n)
	for i := len(d.records) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, d.records[i].Clone())
	}

	return result, nil
}

// LoadChainState returns a copy of the current chain state.
func (d *Driver) LoadChainState(_ context.Context) (*lineage.ChainState, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return cloneState(d.state), nil
}

// SaveChainState replaces the chain state.
func (d *Driver) SaveChainState(_ context.Context, state *lineage.ChainState) error {
	if state == nil {
		return fmt.Errorf("cannot save nil chain state")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.state = cloneState(state)
	return nil
}

// Attest sets the attestation reference of a stored record once.
func (d *Driver) Attest(_ context.Context, executionID string, ref *lineage.AttestationReference) error {
	if ref == nil {
		return fmt.Errorf("cannot attest with nil reference")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	i, ok := d.index[executionID]
	if !ok {
		return storage.NotFoundError{ExecutionID: executionID}
	}

	rec := d.records[i]
	if rec.AttestationReference != nil {
		return fmt.Errorf("%w: %s", storage.ErrAlreadyAttested, executionID)
	}

	r := *ref
	rec.AttestationReference = &r
	return nil
}

// Close is a no-op for the in-memory store.
func (d *Driver) Close() error {
	return nil
}

// Len returns the number of stored records.
func (d *Driver) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.records)
}

func (d *Driver) checkAppend(rec *lineage.Record) error {
	var last int64
	if n := len(d.records); n > 0 {
		last = d.records[n-1].Sequence
	}
	if err := storage.CheckAppend(rec, last); err != nil {
		return err
	}
	if _, ok := d.index[rec.ExecutionID]; ok {
		return fmt.Errorf("%w: execution id %s already stored", storage.ErrConflict, rec.ExecutionID)
	}
	return nil
}

func (d *Driver) append(rec *lineage.Record) {
	d.index[rec.ExecutionID] = len(d.records)
	d.records = append(d.records, rec.Clone())
}

func cloneState(s *lineage.ChainState) *lineage.ChainState {
	if s == nil {
		return lineage.NewChainState()
	}
	c := *s
	return &c
}
