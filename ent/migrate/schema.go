// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementsColumns holds the columns for the "achievements" table.
	AchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "threshold", Type: field.TypeInt},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "reason", Type: field.TypeString},
		{Name: "awarded_at", Type: field.TypeInt64},
	}
	// AchievementsTable holds the schema information for the "achievements" table.
	AchievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    AchievementsColumns,
		PrimaryKey: []*schema.Column{AchievementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievement_user_id",
				Unique:  false,
				Columns: []*schema.Column{AchievementsColumns[1]},
			},
			{
				Name:    "achievement_user_id_kind_threshold",
				Unique:  true,
				Columns: []*schema.Column{AchievementsColumns[1], AchievementsColumns[2], AchievementsColumns[3]},
			},
		},
	}
	// PendingSessionsColumns holds the columns for the "pending_sessions" table.
	PendingSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "user_email", Type: field.TypeString, Nullable: true},
		{Name: "game_mode", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "created_at_ms", Type: field.TypeInt64},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "calories", Type: field.TypeInt, Default: 0},
		{Name: "duration_mins", Type: field.TypeInt, Default: 0},
	}
	// PendingSessionsTable holds the schema information for the "pending_sessions" table.
	PendingSessionsTable = &schema.Table{
		Name:       "pending_sessions",
		Columns:    PendingSessionsColumns,
		PrimaryKey: []*schema.Column{PendingSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pendingsession_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{PendingSessionsColumns[2], PendingSessionsColumns[6]},
			},
			{
				Name:    "pendingsession_user_id_created_at_ms",
				Unique:  false,
				Columns: []*schema.Column{PendingSessionsColumns[2], PendingSessionsColumns[7]},
			},
		},
	}
	// SessionRecordsColumns holds the columns for the "session_records" table.
	SessionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "game_mode", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "calories", Type: field.TypeInt, Default: 0},
		{Name: "duration_mins", Type: field.TypeInt, Default: 0},
	}
	// SessionRecordsTable holds the schema information for the "session_records" table.
	SessionRecordsTable = &schema.Table{
		Name:       "session_records",
		Columns:    SessionRecordsColumns,
		PrimaryKey: []*schema.Column{SessionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[2]},
			},
			{
				Name:    "sessionrecord_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[2], SessionRecordsColumns[3]},
			},
		},
	}
	// UserProfilesColumns holds the columns for the "user_profiles" table.
	UserProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "username", Type: field.TypeString, Default: "Player"},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "age", Type: field.TypeInt, Default: 0},
		{Name: "weight_kg", Type: field.TypeFloat64, Default: 0},
		{Name: "height_cm", Type: field.TypeFloat64, Default: 0},
		{Name: "bmi", Type: field.TypeFloat64, Default: 0},
		{Name: "resting_bpm", Type: field.TypeInt, Default: 0},
		{Name: "workout_frequency", Type: field.TypeInt, Default: 0},
		{Name: "profile_pic", Type: field.TypeString, Default: "default.jpg"},
	}
	// UserProfilesTable holds the schema information for the "user_profiles" table.
	UserProfilesTable = &schema.Table{
		Name:       "user_profiles",
		Columns:    UserProfilesColumns,
		PrimaryKey: []*schema.Column{UserProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userprofile_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserProfilesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementsTable,
		PendingSessionsTable,
		SessionRecordsTable,
		UserProfilesTable,
	}
)

func init() {
}
