package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Achievement records a milestone badge award. Append-only; a user
// earns each (kind, threshold) pairing at most once.
type Achievement struct {
	ent.Schema
}

func (Achievement) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("kind").
			NotEmpty().
			Immutable().
			Comment("streak or total"),
		field.Int("threshold").
			Immutable(),
		field.String("session_id").
			Optional().
			Immutable().
			Comment("Session whose finalization crossed the milestone"),
		field.String("reason").
			NotEmpty().
			Immutable(),
		field.Int64("awarded_at").
			Immutable().
			Comment("Unix seconds"),
	}
}

func (Achievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "kind", "threshold").
			Unique(),
	}
}
