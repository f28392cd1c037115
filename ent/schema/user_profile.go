package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserProfile is the per-user health and identity record at users/{uid}.
// It is owned by the profile-editing flows; the game core only reads it.
type UserProfile struct {
	ent.Schema
}

func (UserProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Identity provider user id"),
		field.String("username").
			Default("Player"),
		field.String("email").
			Optional().
			Comment("Contact reference shared with the companion client"),
		field.Int("age").
			Default(0).
			Comment("Years; 0 means unknown"),
		field.Float("weight_kg").
			Default(0),
		field.Float("height_cm").
			Default(0),
		field.Float("bmi").
			Default(0).
			Comment("Precomputed BMI; 0 means derive from weight/height"),
		field.Int("resting_bpm").
			Default(0),
		field.Int("workout_frequency").
			Default(0).
			Comment("Workout sessions per week"),
		field.String("profile_pic").
			Default("default.jpg"),
	}
}

func (UserProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
