// Package run holds the result types produced by one orchestration pass over a
// set of targets.
package run

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Target names one unit of analysis, e.g. a repository as "owner/name".
type Target string

// ErrMalformedTarget is returned for targets that are not of the form
// "owner/name".
var ErrMalformedTarget = errors.New("malformed target")

// Repo splits a target of the form "owner/name".
func (t Target) Repo() (string, string, error) {
	owner, name, ok := strings.Cut(string(t), "/")
	if !ok || owner == "" || name == "" || strings.ContainsAny(name, "/ ") || strings.Contains(owner, " ") {
		return "", "", fmt.Errorf("%w: %q (expected owner/name)", ErrMalformedTarget, string(t))
	}
	return owner, name, nil
}

// Status is the outcome of analyzing one target.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// ErrCancelled is the error text recorded for targets whose analysis was
// interrupted or never started because the run itself was cancelled.
const ErrCancelled = "cancelled"

// TargetResult is the outcome of analyzing one Target. It is created once per
// orchestration pass and never mutated after the owning Result is returned.
type TargetResult struct {
	TargetID  Target    `json:"target_id"`
	Status    Status    `json:"status"`
	StartedAt time.Time `json:"started_at"`

	// DurationNs is the wall time of the analysis job in nanoseconds.
	DurationNs int64 `json:"duration_ns"`

	// Payload is the opaque structured data produced by the analyzer. It is
	// nil for failed targets.
	Payload map[string]any `json:"payload,omitempty"`

	// Error is set iff Status is StatusFailed.
	Error string `json:"error,omitempty"`
}

// Duration returns the job wall time.
func (r TargetResult) Duration() time.Duration {
	return time.Duration(r.DurationNs)
}

// Succeeded reports whether the target was analyzed successfully.
func (r TargetResult) Succeeded() bool {
	return r.Status == StatusSuccess
}

// Summary counts the outcomes of a run.
type Summary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Result is the aggregate of one orchestration pass. Targets preserve the input
// order of the run regardless of completion order.
type Result struct {
	RunID     string         `json:"run_id"`
	StartedAt time.Time      `json:"started_at"`
	Targets   []TargetResult `json:"targets"`
	Summary   Summary        `json:"summary"`
}

// Summarize computes a Summary by scanning the given results.
func Summarize(results []TargetResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Succeeded() {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	return s
}

// Validate checks the structural invariants of a Result:
// succeeded + failed == total == len(targets), unique target ids and an error
// on every failed target.
func (r *Result) Validate() error {
	if r == nil {
		return fmt.Errorf("nil run result")
	}
	if r.RunID == "" {
		return fmt.Errorf("run result has no run id")
	}

	if r.Summary.Total != len(r.Targets) {
		return fmt.Errorf("summary total %d does not match %d targets", r.Summary.Total, len(r.Targets))
	}
	if r.Summary.Succeeded+r.Summary.Failed != r.Summary.Total {
		return fmt.Errorf("summary succeeded %d + failed %d does not match total %d",
			r.Summary.Succeeded, r.Summary.Failed, r.Summary.Total)
	}
	if got := Summarize(r.Targets); got != r.Summary {
		return fmt.Errorf("summary %+v does not match target statuses %+v", r.Summary, got)
	}

	seen := make(map[Target]bool, len(r.Targets))
	for _, t := range r.Targets {
		if seen[t.TargetID] {
			return fmt.Errorf("duplicate target %q", t.TargetID)
		}
		seen[t.TargetID] = true

		if t.Status == StatusFailed && t.Error == "" {
			return fmt.Errorf("failed target %q has no error", t.TargetID)
		}
	}

	return nil
}

// Index returns the target results keyed by target id.
func (r *Result) Index() map[Target]TargetResult {
	idx := make(map[Target]TargetResult, len(r.Targets))
	for _, t := range r.Targets {
		idx[t.TargetID] = t
	}
	return idx
}
