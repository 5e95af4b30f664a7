// Package analysis defines the collaborator that produces findings for one
// target. Analyzers own the shape of their payloads; the orchestrator and the
// lineage chain treat payloads as opaque structured values.
package analysis

import (
	"context"

	"github.com/papercomputeco/lineage/pkg/run"
)

// Analyzer inspects one target and returns its findings.
//
// Analyze must honor ctx cancellation. It may block on network or subprocess
// I/O and is called concurrently for different targets.
type Analyzer interface {
	// Name returns the canonical analyzer name (e.g., "github", "git").
	Name() string

	Analyze(ctx context.Context, target run.Target) (map[string]any, error)
}

// Func adapts a plain function to the Analyzer interface.
type Func func(ctx context.Context, target run.Target) (map[string]any, error)

// Name returns "func".
func (f Func) Name() string {
	return "func"
}

// Analyze calls f.
func (f Func) Analyze(ctx context.Context, target run.Target) (map[string]any, error) {
	return f(ctx, target)
}
