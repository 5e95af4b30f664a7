package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// ChainState holds the schema definition for the ChainState entity.
// The table holds a single row pointing at the tip of the chain. It is
// replaced, never updated, in the same transaction as the append.
type ChainState struct {
	ent.Schema
}

// Annotations of the ChainState.
func (ChainState) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "chain_state"},
	}
}

// Fields of the ChainState.
func (ChainState) Fields() []ent.Field {
	return []ent.Field{
		field.String("last_hash").
			Immutable(),

		field.Int64("last_sequence").
			Immutable(),

		// snapshot is the canonical JSON of the last run result
		field.Text("snapshot").
			Optional().
			Nillable().
			Immutable(),
	}
}
