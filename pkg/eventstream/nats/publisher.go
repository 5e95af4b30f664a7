// Package nats implements an eventstream.Publisher on a NATS subject.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	natsgo "github.com/nats-io/nats.go"

	"github.com/papercomputeco/lineage/pkg/eventstream"
)

const (
	// DefaultSubject is used when no subject is configured.
	DefaultSubject = "lineage.records.appended"

	// DefaultURL is the local NATS server.
	DefaultURL = natsgo.DefaultURL

	flushTimeout = 5 * time.Second
)

// Config holds configuration for the NATS publisher.
type Config struct {
	URL     string
	Subject string

	// ConnectTimeout bounds the initial connection. Defaults to 5 seconds.
	ConnectTimeout time.Duration
}

// Publisher publishes record events to a NATS subject.
type Publisher struct {
	conn    *natsgo.Conn
	subject string
}

// NewPublisher connects to NATS and returns a publisher.
func NewPublisher(cfg Config) (*Publisher, error) {
	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}

	subject := cfg.Subject
	if subject == "" {
		subject = DefaultSubject
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	conn, err := natsgo.Connect(url,
		natsgo.Name("lineage"),
		natsgo.Timeout(timeout),
		natsgo.MaxReconnects(10),
		natsgo.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats at %s: %w", url, err)
	}

	return &Publisher{conn: conn, subject: subject}, nil
}

// PublishRecord publishes event and waits for the server to acknowledge the
// flush or for ctx to end.
func (p *Publisher) PublishRecord(ctx context.Context, event *eventstream.RecordAppendedEvent) error {
	if event == nil {
		return eventstream.ErrNilRecordEvent
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	msg := natsgo.NewMsg(p.subject)
	msg.Data = data
	msg.Header.Set("Nats-Msg-Id", event.EventID)
	msg.Header.Set("Lineage-Event-Type", event.EventType)

	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("publishing to %s: %w", p.subject, err)
	}

	// FlushWithContext requires a deadline.
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flushTimeout)
		defer cancel()
	}

	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("flushing nats connection: %w", err)
	}
	return nil
}

// Close drains the connection.
func (p *Publisher) Close() error {
	return p.conn.Drain()
}

var _ eventstream.Publisher = (*Publisher)(nil)
