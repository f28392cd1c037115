// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/stepsync/companion/ent/achievement"
	"github.com/stepsync/companion/ent/pendingsession"
	"github.com/stepsync/companion/ent/schema"
	"github.com/stepsync/companion/ent/sessionrecord"
	"github.com/stepsync/companion/ent/userprofile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementFields := schema.Achievement{}.Fields()
	_ = achievementFields
	// achievementDescUserID is the schema descriptor for user_id field.
	achievementDescUserID := achievementFields[0].Descriptor()
	// achievement.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	achievement.UserIDValidator = achievementDescUserID.Validators[0].(func(string) error)
	// achievementDescKind is the schema descriptor for kind field.
	achievementDescKind := achievementFields[1].Descriptor()
	// achievement.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	achievement.KindValidator = achievementDescKind.Validators[0].(func(string) error)
	// achievementDescReason is the schema descriptor for reason field.
	achievementDescReason := achievementFields[4].Descriptor()
	// achievement.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	achievement.ReasonValidator = achievementDescReason.Validators[0].(func(string) error)
	pendingsessionFields := schema.PendingSession{}.Fields()
	_ = pendingsessionFields
	// pendingsessionDescSessionID is the schema descriptor for session_id field.
	pendingsessionDescSessionID := pendingsessionFields[0].Descriptor()
	// pendingsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	pendingsession.SessionIDValidator = pendingsessionDescSessionID.Validators[0].(func(string) error)
	// pendingsessionDescUserID is the schema descriptor for user_id field.
	pendingsessionDescUserID := pendingsessionFields[1].Descriptor()
	// pendingsession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	pendingsession.UserIDValidator = pendingsessionDescUserID.Validators[0].(func(string) error)
	// pendingsessionDescGameMode is the schema descriptor for game_mode field.
	pendingsessionDescGameMode := pendingsessionFields[3].Descriptor()
	// pendingsession.GameModeValidator is a validator for the "game_mode" field. It is called by the builders before save.
	pendingsession.GameModeValidator = pendingsessionDescGameMode.Validators[0].(func(string) error)
	// pendingsessionDescDifficulty is the schema descriptor for difficulty field.
	pendingsessionDescDifficulty := pendingsessionFields[4].Descriptor()
	// pendingsession.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	pendingsession.DifficultyValidator = pendingsessionDescDifficulty.Validators[0].(func(string) error)
	// pendingsessionDescStatus is the schema descriptor for status field.
	pendingsessionDescStatus := pendingsessionFields[5].Descriptor()
	// pendingsession.DefaultStatus holds the default value on creation for the status field.
	pendingsession.DefaultStatus = pendingsessionDescStatus.Default.(string)
	// pendingsessionDescScore is the schema descriptor for score field.
	pendingsessionDescScore := pendingsessionFields[7].Descriptor()
	// pendingsession.DefaultScore holds the default value on creation for the score field.
	pendingsession.DefaultScore = pendingsessionDescScore.Default.(int)
	// pendingsessionDescCalories is the schema descriptor for calories field.
	pendingsessionDescCalories := pendingsessionFields[8].Descriptor()
	// pendingsession.DefaultCalories holds the default value on creation for the calories field.
	pendingsession.DefaultCalories = pendingsessionDescCalories.Default.(int)
	// pendingsessionDescDurationMins is the schema descriptor for duration_mins field.
	pendingsessionDescDurationMins := pendingsessionFields[9].Descriptor()
	// pendingsession.DefaultDurationMins holds the default value on creation for the duration_mins field.
	pendingsession.DefaultDurationMins = pendingsessionDescDurationMins.Default.(int)
	sessionrecordFields := schema.SessionRecord{}.Fields()
	_ = sessionrecordFields
	// sessionrecordDescSessionID is the schema descriptor for session_id field.
	sessionrecordDescSessionID := sessionrecordFields[0].Descriptor()
	// sessionrecord.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionrecord.SessionIDValidator = sessionrecordDescSessionID.Validators[0].(func(string) error)
	// sessionrecordDescUserID is the schema descriptor for user_id field.
	sessionrecordDescUserID := sessionrecordFields[1].Descriptor()
	// sessionrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionrecord.UserIDValidator = sessionrecordDescUserID.Validators[0].(func(string) error)
	// sessionrecordDescGameMode is the schema descriptor for game_mode field.
	sessionrecordDescGameMode := sessionrecordFields[3].Descriptor()
	// sessionrecord.GameModeValidator is a validator for the "game_mode" field. It is called by the builders before save.
	sessionrecord.GameModeValidator = sessionrecordDescGameMode.Validators[0].(func(string) error)
	// sessionrecordDescDifficulty is the schema descriptor for difficulty field.
	sessionrecordDescDifficulty := sessionrecordFields[4].Descriptor()
	// sessionrecord.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	sessionrecord.DifficultyValidator = sessionrecordDescDifficulty.Validators[0].(func(string) error)
	// sessionrecordDescScore is the schema descriptor for score field.
	sessionrecordDescScore := sessionrecordFields[5].Descriptor()
	// sessionrecord.DefaultScore holds the default value on creation for the score field.
	sessionrecord.DefaultScore = sessionrecordDescScore.Default.(int)
	// sessionrecordDescCalories is the schema descriptor for calories field.
	sessionrecordDescCalories := sessionrecordFields[6].Descriptor()
	// sessionrecord.DefaultCalories holds the default value on creation for the calories field.
	sessionrecord.DefaultCalories = sessionrecordDescCalories.Default.(int)
	// sessionrecordDescDurationMins is the schema descriptor for duration_mins field.
	sessionrecordDescDurationMins := sessionrecordFields[7].Descriptor()
	// sessionrecord.DefaultDurationMins holds the default value on creation for the duration_mins field.
	sessionrecord.DefaultDurationMins = sessionrecordDescDurationMins.Default.(int)
	userprofileFields := schema.UserProfile{}.Fields()
	_ = userprofileFields
	// userprofileDescUserID is the schema descriptor for user_id field.
	userprofileDescUserID := userprofileFields[0].Descriptor()
	// userprofile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userprofile.UserIDValidator = userprofileDescUserID.Validators[0].(func(string) error)
	// userprofileDescUsername is the schema descriptor for username field.
	userprofileDescUsername := userprofileFields[1].Descriptor()
	// userprofile.DefaultUsername holds the default value on creation for the username field.
	userprofile.DefaultUsername = userprofileDescUsername.Default.(string)
	// userprofileDescAge is the schema descriptor for age field.
	userprofileDescAge := userprofileFields[3].Descriptor()
	// userprofile.DefaultAge holds the default value on creation for the age field.
	userprofile.DefaultAge = userprofileDescAge.Default.(int)
	// userprofileDescWeightKg is the schema descriptor for weight_kg field.
	userprofileDescWeightKg := userprofileFields[4].Descriptor()
	// userprofile.DefaultWeightKg holds the default value on creation for the weight_kg field.
	userprofile.DefaultWeightKg = userprofileDescWeightKg.Default.(float64)
	// userprofileDescHeightCm is the schema descriptor for height_cm field.
	userprofileDescHeightCm := userprofileFields[5].Descriptor()
	// userprofile.DefaultHeightCm holds the default value on creation for the height_cm field.
	userprofile.DefaultHeightCm = userprofileDescHeightCm.Default.(float64)
	// userprofileDescBmi is the schema descriptor for bmi field.
	userprofileDescBmi := userprofileFields[6].Descriptor()
	// userprofile.DefaultBmi holds the default value on creation for the bmi field.
	userprofile.DefaultBmi = userprofileDescBmi.Default.(float64)
	// userprofileDescRestingBpm is the schema descriptor for resting_bpm field.
	userprofileDescRestingBpm := userprofileFields[7].Descriptor()
	// userprofile.DefaultRestingBpm holds the default value on creation for the resting_bpm field.
	userprofile.DefaultRestingBpm = userprofileDescRestingBpm.Default.(int)
	// userprofileDescWorkoutFrequency is the schema descriptor for workout_frequency field.
	userprofileDescWorkoutFrequency := userprofileFields[8].Descriptor()
	// userprofile.DefaultWorkoutFrequency holds the default value on creation for the workout_frequency field.
	userprofile.DefaultWorkoutFrequency = userprofileDescWorkoutFrequency.Default.(int)
	// userprofileDescProfilePic is the schema descriptor for profile_pic field.
	userprofileDescProfilePic := userprofileFields[9].Descriptor()
	// userprofile.DefaultProfilePic holds the default value on creation for the profile_pic field.
	userprofile.DefaultProfilePic = userprofileDescProfilePic.Default.(string)
}
