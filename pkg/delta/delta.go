// Package delta computes the structured difference between two successive run
// results.
package delta

import (
	"reflect"
	"slices"
	"sort"

	"github.com/spf13/cast"

	"github.com/papercomputeco/lineage/pkg/run"
)

// ChangeKind classifies a single field change.
type ChangeKind string

const (
	KindAddition     ChangeKind = "addition"
	KindRemoval      ChangeKind = "removal"
	KindIncrease     ChangeKind = "increase"
	KindDecrease     ChangeKind = "decrease"
	KindModification ChangeKind = "modification"
	KindNoChange     ChangeKind = "no_change"
)

// payloadPrefix prefixes payload keys in field names.
const payloadPrefix = "payload."

// FieldChange is one monitored field whose value differs between two runs.
// PreviousValue is nil for additions and CurrentValue is nil for removals.
type FieldChange struct {
	Field         string     `json:"field"`
	PreviousValue any        `json:"previous_value"`
	CurrentValue  any        `json:"current_value"`
	ChangeKind    ChangeKind `json:"change_kind"`
}

// TargetChange lists the field changes of a target present in both runs.
type TargetChange struct {
	TargetID     run.Target    `json:"target_id"`
	FieldChanges []FieldChange `json:"field_changes"`
}

// Delta is the structured diff between the previous run and the current one.
type Delta struct {
	AddedTargets    []run.Target   `json:"added_targets"`
	RemovedTargets  []run.Target   `json:"removed_targets"`
	ModifiedTargets []TargetChange `json:"modified_targets"`
}

// IsEmpty reports whether nothing changed between the two runs.
func (d Delta) IsEmpty() bool {
	return len(d.AddedTargets) == 0 && len(d.RemovedTargets) == 0 && len(d.ModifiedTargets) == 0
}

// Compute diffs current against previous. A nil previous is the genesis case:
// every current target is added and nothing is modified.
//
// Compute is a pure function of its inputs. Added and modified targets follow
// the current run's order, removed targets follow the previous run's order.
func Compute(previous, current *run.Result) Delta {
	d := Delta{
		AddedTargets:    []run.Target{},
		RemovedTargets:  []run.Target{},
		ModifiedTargets: []TargetChange{},
	}

	if current == nil {
		current = &run.Result{}
	}

	if previous == nil {
		for _, t := range current.Targets {
			d.AddedTargets = append(d.AddedTargets, t.TargetID)
		}
		return d
	}

	prevIndex := previous.Index()
	currIndex := current.Index()

	for _, cur := range current.Targets {
		prev, ok := prevIndex[cur.TargetID]
		if !ok {
			d.AddedTargets = append(d.AddedTargets, cur.TargetID)
			continue
		}

		changes := compareTargets(prev, cur)
		if len(changes) > 0 {
			d.ModifiedTargets = append(d.ModifiedTargets, TargetChange{
				TargetID:     cur.TargetID,
				FieldChanges: changes,
			})
		}
	}

	for _, prev := range previous.Targets {
		if _, ok := currIndex[prev.TargetID]; !ok {
			d.RemovedTargets = append(d.RemovedTargets, prev.TargetID)
		}
	}

	return d
}

// compareTargets compares the monitored fields of one target: its status, its
// error and every top-level payload key present on either side.
func compareTargets(prev, cur run.TargetResult) []FieldChange {
	var changes []FieldChange

	add := func(field string, p any, pOK bool, c any, cOK bool) {
		kind := Kind(p, pOK, c, cOK)
		if kind == KindNoChange {
			return
		}
		changes = append(changes, FieldChange{
			Field:         field,
			PreviousValue: p,
			CurrentValue:  c,
			ChangeKind:    kind,
		})
	}

	add("status", string(prev.Status), prev.Status != "", string(cur.Status), cur.Status != "")
	add("error", prev.Error, prev.Error != "", cur.Error, cur.Error != "")

	for _, key := range payloadKeys(prev.Payload, cur.Payload) {
		p, pOK := prev.Payload[key]
		c, cOK := cur.Payload[key]
		add(payloadPrefix+key, p, pOK, c, cOK)
	}

	return changes
}

// payloadKeys returns the sorted union of keys of both payloads.
func payloadKeys(a, b map[string]any) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Kind classifies the change between a previous and a current value. The ok
// flags report whether each side is present at all; a present nil is a value.
func Kind(prev any, prevOK bool, cur any, curOK bool) ChangeKind {
	switch {
	case !prevOK && !curOK:
		return KindNoChange
	case !prevOK:
		return KindAddition
	case !curOK:
		return KindRemoval
	}

	if isNumber(prev) && isNumber(cur) {
		p, c := cast.ToFloat64(prev), cast.ToFloat64(cur)
		switch {
		case c > p:
			return KindIncrease
		case c < p:
			return KindDecrease
		default:
			return KindNoChange
		}
	}

	if equalValues(prev, cur) {
		return KindNoChange
	}
	return KindModification
}

// isNumber reports whether v holds a Go numeric type. Numeric strings are not
// numbers.
func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

// equalValues compares two non-numeric values. Slices of primitives (e.g.
// topic lists) compare element-wise, everything else falls back to deep
// equality.
func equalValues(a, b any) bool {
	as, aok := a.([]any)
	bs, bok := b.([]any)
	if aok && bok {
		return slices.EqualFunc(as, bs, func(x, y any) bool {
			if isNumber(x) && isNumber(y) {
				return cast.ToFloat64(x) == cast.ToFloat64(y)
			}
			return reflect.DeepEqual(x, y)
		})
	}
	return reflect.DeepEqual(a, b)
}
