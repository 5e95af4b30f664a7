package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LineageRecord holds the schema definition for the LineageRecord entity.
// Each row is one link of the append-only audit chain.
type LineageRecord struct {
	ent.Schema
}

// Annotations of the LineageRecord.
func (LineageRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "lineage_records"},
	}
}

// Fields of the LineageRecord.
func (LineageRecord) Fields() []ent.Field {
	return []ent.Field{
		// id is the execution id of the record
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),

		// sequence is the 1-based append position; unique so two writers
		// can never claim the same slot
		field.Int64("sequence").
			Unique().
			Immutable(),

		field.String("run_id").
			Immutable(),

		field.String("previous_hash").
			Immutable(),

		field.String("chain_hash").
			Immutable(),

		field.Time("recorded_at").
			Immutable(),

		// body is the canonical JSON of the record without its attestation
		field.Text("body").
			Immutable(),

		// attestation is the canonical JSON of the attestation reference,
		// written at most once after witnessing
		field.Text("attestation").
			Optional().
			Nillable(),
	}
}

// Indexes of the LineageRecord.
func (LineageRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
	}
}
