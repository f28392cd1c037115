package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PendingSession is the shared coordination record at
// pendingSessions/{sessionId}. This app creates it with status=pending;
// the external companion client flips it to in_progress; completion is
// written by whichever side ends the game. Last writer wins.
type PendingSession struct {
	ent.Schema
}

func (PendingSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Owning user"),
		field.String("user_email").
			Optional().
			Comment("Contact reference for the companion client"),
		field.String("game_mode").
			NotEmpty(),
		field.String("difficulty").
			NotEmpty(),
		field.String("status").
			Default("pending").
			Comment("pending, in_progress or completed"),
		field.Int64("created_at_ms").
			Immutable().
			Comment("Unix MILLISECONDS at creation; history records use seconds"),
		field.Int("score").
			Default(0).
			Comment("Set on completion only"),
		field.Int("calories").
			Default(0).
			Comment("Set on completion only"),
		field.Int("duration_mins").
			Default(0).
			Comment("Set on completion only"),
	}
}

func (PendingSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status"),
		index.Fields("user_id", "created_at_ms"),
	}
}
