package witness

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/papercomputeco/lineage/pkg/hashchain"
	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/logger"
)

const (
	// DefaultTimeout bounds a single submission attempt.
	DefaultTimeout = 5 * time.Second

	// DefaultRetries is the number of retries after the first attempt.
	DefaultRetries = 2

	// DefaultBackoff is the base delay between attempts. The n-th retry waits
	// n times this long.
	DefaultBackoff = 250 * time.Millisecond

	attestationsPath = "/attestations"
)

// ErrNoEndpoint is returned when an HTTPWitness is built without an endpoint.
var ErrNoEndpoint = errors.New("witness endpoint is required")

// Config holds configuration for the HTTP witness client.
type Config struct {
	// Endpoint is the base URL of the witness service, e.g.
	// "https://witness.example.com". Records are posted to Endpoint + "/attestations".
	Endpoint string

	// Timeout bounds each attempt. Defaults to DefaultTimeout.
	Timeout time.Duration

	// Retries is the number of retries after the first failed attempt. Only
	// network errors and 5xx responses are retried. Negative disables retries.
	Retries int

	// Backoff is the base delay between attempts. Defaults to DefaultBackoff.
	Backoff time.Duration

	Logger *slog.Logger
}

// HTTPWitness posts records as JSON to a witness service.
type HTTPWitness struct {
	url        string
	timeout    time.Duration
	retries    int
	backoff    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// submitResponse is the optional body returned by the witness.
type submitResponse struct {
	RemoteID string `json:"remote_id"`
	ID       string `json:"id"`
}

// NewHTTPWitness creates a new witness client.
func NewHTTPWitness(cfg Config) (*HTTPWitness, error) {
	if cfg.Endpoint == "" {
		return nil, ErrNoEndpoint
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = DefaultBackoff
	}

	retries := max(cfg.Retries, 0)

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &HTTPWitness{
		url:     strings.TrimRight(cfg.Endpoint, "/") + attestationsPath,
		timeout: timeout,
		retries: retries,
		backoff: backoff,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}, nil
}

// Budget returns the longest time Submit can take: every attempt timing out
// plus every backoff delay.
func (w *HTTPWitness) Budget() time.Duration {
	total := time.Duration(w.retries+1) * w.timeout
	for n := 1; n <= w.retries; n++ {
		total += time.Duration(n) * w.backoff
	}
	return total
}

// Submit posts rec to the witness. It retries network errors and 5xx
// responses with linear backoff and never exceeds Budget.
func (w *HTTPWitness) Submit(ctx context.Context, rec *lineage.Record) Result {
	if rec == nil {
		return Result{Status: StatusFailed, Err: errors.New("cannot witness nil record")}
	}

	body, err := hashchain.CanonicalBytes(rec)
	if err != nil {
		return Result{Status: StatusFailed, Err: fmt.Errorf("encoding record: %w", err)}
	}

	ctx, cancel := context.WithTimeout(ctx, w.Budget())
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= w.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return Result{Status: StatusFailed, Err: fmt.Errorf("%w (last error: %v)", ctx.Err(), lastErr)}
			case <-time.After(time.Duration(attempt) * w.backoff):
			}
		}

		remoteID, retryable, err := w.post(ctx, body)
		if err == nil {
			w.logger.Debug("record witnessed",
				"execution_id", rec.ExecutionID,
				"remote_id", remoteID,
				"attempt", attempt+1,
			)
			return Result{Status: StatusSuccess, RemoteID: remoteID}
		}

		lastErr = err
		w.logger.Warn("witness submission failed",
			"execution_id", rec.ExecutionID,
			"attempt", attempt+1,
			"retryable", retryable,
			"error", err,
		)
		if !retryable {
			break
		}
	}

	return Result{Status: StatusFailed, Err: lastErr}
}

// post sends one attempt. retryable reports whether a later attempt may
// succeed.
func (w *HTTPWitness) post(ctx context.Context, body []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return "", ctx.Err() == nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", resp.StatusCode >= 500,
			fmt.Errorf("witness returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var sr submitResponse
	if len(respBody) > 0 && json.Unmarshal(respBody, &sr) == nil {
		if sr.RemoteID != "" {
			return sr.RemoteID, false, nil
		}
		return sr.ID, false, nil
	}

	return "", false, nil
}

// Ensure HTTPWitness implements Witness
var _ Witness = (*HTTPWitness)(nil)
