// Package cached wraps a storage.Driver with a read-through LRU cache for
// record lookups by execution id.
package cached

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/storage"
)

// DefaultSize is the number of records kept when no size is given.
const DefaultSize = 1024

// Driver caches Get results of the wrapped storage.Driver. Records are
// immutable once appended apart from their write-once attestation reference,
// so only attested records are cached: they can no longer change.
type Driver struct {
	storage.Driver

	cache *lru.Cache[string, *lineage.Record]
}

// NewDriver wraps inner with a cache holding up to size records.
func NewDriver(inner storage.Driver, size int) (*Driver, error) {
	if size <= 0 {
		size = DefaultSize
	}

	cache, err := lru.New[string, *lineage.Record](size)
	if err != nil {
		return nil, fmt.Errorf("creating record cache: %w", err)
	}

	return &Driver{Driver: inner, cache: cache}, nil
}

// Get returns the cached record or loads it from the wrapped driver.
func (d *Driver) Get(ctx context.Context, executionID string) (*lineage.Record, error) {
	if rec, ok := d.cache.Get(executionID); ok {
		return rec.Clone(), nil
	}

	rec, err := d.Driver.Get(ctx, executionID)
	if err != nil {
		return nil, err
	}

	// An unattested copy may be overtaken by a concurrent Attest.
	if rec.AttestationReference != nil {
		d.cache.Add(executionID, rec.Clone())
	}
	return rec, nil
}

// Attest forwards to the wrapped driver and drops any cached copy.
func (d *Driver) Attest(ctx context.Context, executionID string, ref *lineage.AttestationReference) error {
	d.cache.Remove(executionID)
	defer d.cache.Remove(executionID)
	return d.Driver.Attest(ctx, executionID, ref)
}

// Len returns the number of cached records.
func (d *Driver) Len() int {
	return d.cache.Len()
}
