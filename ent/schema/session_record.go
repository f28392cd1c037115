package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecord is one completed game session in a user's append-only
// history (users/{uid}/sessions/{sessionId}). Immutable once written.
//
// The timestamp is Unix SECONDS. Pending sessions use milliseconds; the
// split is part of the wire contract with the companion client and must
// not be unified here.
type SessionRecord struct {
	ent.Schema
}

func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Owning user"),
		field.Int64("timestamp").
			Immutable().
			Comment("Unix seconds at completion"),
		field.String("game_mode").
			NotEmpty().
			Comment("btc, memory or mirror"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium or hard"),
		field.Int("score").
			Default(0),
		field.Int("calories").
			Default(0),
		field.Int("duration_mins").
			Default(0),
	}
}

func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "timestamp"),
	}
}
