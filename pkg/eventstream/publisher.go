// Package eventstream publishes lineage record events to an event stream
// backend. Publishing is best-effort and happens after a record is durable.
package eventstream

import "context"

// Publisher publishes record events to an event stream backend.
type Publisher interface {
	PublishRecord(ctx context.Context, event *RecordAppendedEvent) error
	Close() error
}
