// Code generated by ent, DO NOT EDIT.

package pendingsession

import (
	"entgo.io/ent/dialect/sql"
	"github.com/stepsync/companion/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldUserID, v))
}

// UserEmail applies equality check predicate on the "user_email" field. It's identical to UserEmailEQ.
func UserEmail(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldUserEmail, v))
}

// GameMode applies equality check predicate on the "game_mode" field. It's identical to GameModeEQ.
func GameMode(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldGameMode, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldDifficulty, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldStatus, v))
}

// CreatedAtMs applies equality check predicate on the "created_at_ms" field. It's identical to CreatedAtMsEQ.
func CreatedAtMs(v int64) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldCreatedAtMs, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldScore, v))
}

// Calories applies equality check predicate on the "calories" field. It's identical to CaloriesEQ.
func Calories(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldCalories, v))
}

// DurationMins applies equality check predicate on the "duration_mins" field. It's identical to DurationMinsEQ.
func DurationMins(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldDurationMins, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldContainsFold(FieldUserID, v))
}

// UserEmailEQ applies the EQ predicate on the "user_email" field.
func UserEmailEQ(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldUserEmail, v))
}

// UserEmailNEQ applies the NEQ predicate on the "user_email" field.
func UserEmailNEQ(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNEQ(FieldUserEmail, v))
}

// UserEmailIn applies the In predicate on the "user_email" field.
func UserEmailIn(vs ...string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldIn(FieldUserEmail, vs...))
}

// UserEmailNotIn applies the NotIn predicate on the "user_email" field.
func UserEmailNotIn(vs ...string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNotIn(FieldUserEmail, vs...))
}

// UserEmailGT applies the GT predicate on the "user_email" field.
func UserEmailGT(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGT(FieldUserEmail, v))
}

// UserEmailGTE applies the GTE predicate on the "user_email" field.
func UserEmailGTE(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGTE(FieldUserEmail, v))
}

// UserEmailLT applies the LT predicate on the "user_email" field.
func UserEmailLT(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLT(FieldUserEmail, v))
}

// UserEmailLTE applies the LTE predicate on the "user_email" field.
func UserEmailLTE(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLTE(FieldUserEmail, v))
}

// UserEmailContains applies the Contains predicate on the "user_email" field.
func UserEmailContains(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldContains(FieldUserEmail, v))
}

// UserEmailHasPrefix applies the HasPrefix predicate on the "user_email" field.
func UserEmailHasPrefix(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldHasPrefix(FieldUserEmail, v))
}

// UserEmailHasSuffix applies the HasSuffix predicate on the "user_email" field.
func UserEmailHasSuffix(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldHasSuffix(FieldUserEmail, v))
}

// UserEmailIsNil applies the IsNil predicate on the "user_email" field.
func UserEmailIsNil() predicate.PendingSession {
	return predicate.PendingSession(sql.FieldIsNull(FieldUserEmail))
}

// UserEmailNotNil applies the NotNil predicate on the "user_email" field.
func UserEmailNotNil() predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNotNull(FieldUserEmail))
}

// UserEmailEqualFold applies the EqualFold predicate on the "user_email" field.
func UserEmailEqualFold(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEqualFold(FieldUserEmail, v))
}

// UserEmailContainsFold applies the ContainsFold predicate on the "user_email" field.
func UserEmailContainsFold(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldContainsFold(FieldUserEmail, v))
}

// GameModeEQ applies the EQ predicate on the "game_mode" field.
func GameModeEQ(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldGameMode, v))
}

// GameModeNEQ applies the NEQ predicate on the "game_mode" field.
func GameModeNEQ(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNEQ(FieldGameMode, v))
}

// GameModeIn applies the In predicate on the "game_mode" field.
func GameModeIn(vs ...string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldIn(FieldGameMode, vs...))
}

// GameModeNotIn applies the NotIn predicate on the "game_mode" field.
func GameModeNotIn(vs ...string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNotIn(FieldGameMode, vs...))
}

// GameModeGT applies the GT predicate on the "game_mode" field.
func GameModeGT(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGT(FieldGameMode, v))
}

// GameModeGTE applies the GTE predicate on the "game_mode" field.
func GameModeGTE(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGTE(FieldGameMode, v))
}

// GameModeLT applies the LT predicate on the "game_mode" field.
func GameModeLT(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLT(FieldGameMode, v))
}

// GameModeLTE applies the LTE predicate on the "game_mode" field.
func GameModeLTE(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLTE(FieldGameMode, v))
}

// GameModeContains applies the Contains predicate on the "game_mode" field.
func GameModeContains(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldContains(FieldGameMode, v))
}

// GameModeHasPrefix applies the HasPrefix predicate on the "game_mode" field.
func GameModeHasPrefix(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldHasPrefix(FieldGameMode, v))
}

// GameModeHasSuffix applies the HasSuffix predicate on the "game_mode" field.
func GameModeHasSuffix(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldHasSuffix(FieldGameMode, v))
}

// GameModeEqualFold applies the EqualFold predicate on the "game_mode" field.
func GameModeEqualFold(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEqualFold(FieldGameMode, v))
}

// GameModeContainsFold applies the ContainsFold predicate on the "game_mode" field.
func GameModeContainsFold(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldContainsFold(FieldGameMode, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldContainsFold(FieldDifficulty, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtMsEQ applies the EQ predicate on the "created_at_ms" field.
func CreatedAtMsEQ(v int64) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsNEQ applies the NEQ predicate on the "created_at_ms" field.
func CreatedAtMsNEQ(v int64) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNEQ(FieldCreatedAtMs, v))
}

// CreatedAtMsIn applies the In predicate on the "created_at_ms" field.
func CreatedAtMsIn(vs ...int64) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsNotIn applies the NotIn predicate on the "created_at_ms" field.
func CreatedAtMsNotIn(vs ...int64) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNotIn(FieldCreatedAtMs, vs...))
}

// CreatedAtMsGT applies the GT predicate on the "created_at_ms" field.
func CreatedAtMsGT(v int64) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGT(FieldCreatedAtMs, v))
}

// CreatedAtMsGTE applies the GTE predicate on the "created_at_ms" field.
func CreatedAtMsGTE(v int64) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGTE(FieldCreatedAtMs, v))
}

// CreatedAtMsLT applies the LT predicate on the "created_at_ms" field.
func CreatedAtMsLT(v int64) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLT(FieldCreatedAtMs, v))
}

// CreatedAtMsLTE applies the LTE predicate on the "created_at_ms" field.
func CreatedAtMsLTE(v int64) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLTE(FieldCreatedAtMs, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLTE(FieldScore, v))
}

// CaloriesEQ applies the EQ predicate on the "calories" field.
func CaloriesEQ(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldCalories, v))
}

// CaloriesNEQ applies the NEQ predicate on the "calories" field.
func CaloriesNEQ(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNEQ(FieldCalories, v))
}

// CaloriesIn applies the In predicate on the "calories" field.
func CaloriesIn(vs ...int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldIn(FieldCalories, vs...))
}

// CaloriesNotIn applies the NotIn predicate on the "calories" field.
func CaloriesNotIn(vs ...int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNotIn(FieldCalories, vs...))
}

// CaloriesGT applies the GT predicate on the "calories" field.
func CaloriesGT(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGT(FieldCalories, v))
}

// CaloriesGTE applies the GTE predicate on the "calories" field.
func CaloriesGTE(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGTE(FieldCalories, v))
}

// CaloriesLT applies the LT predicate on the "calories" field.
func CaloriesLT(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLT(FieldCalories, v))
}

// CaloriesLTE applies the LTE predicate on the "calories" field.
func CaloriesLTE(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLTE(FieldCalories, v))
}

// DurationMinsEQ applies the EQ predicate on the "duration_mins" field.
func DurationMinsEQ(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldEQ(FieldDurationMins, v))
}

// DurationMinsNEQ applies the NEQ predicate on the "duration_mins" field.
func DurationMinsNEQ(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNEQ(FieldDurationMins, v))
}

// DurationMinsIn applies the In predicate on the "duration_mins" field.
func DurationMinsIn(vs ...int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldIn(FieldDurationMins, vs...))
}

// DurationMinsNotIn applies the NotIn predicate on the "duration_mins" field.
func DurationMinsNotIn(vs ...int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldNotIn(FieldDurationMins, vs...))
}

// DurationMinsGT applies the GT predicate on the "duration_mins" field.
func DurationMinsGT(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGT(FieldDurationMins, v))
}

// DurationMinsGTE applies the GTE predicate on the "duration_mins" field.
func DurationMinsGTE(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldGTE(FieldDurationMins, v))
}

// DurationMinsLT applies the LT predicate on the "duration_mins" field.
func DurationMinsLT(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLT(FieldDurationMins, v))
}

// DurationMinsLTE applies the LTE predicate on the "duration_mins" field.
func DurationMinsLTE(v int) predicate.PendingSession {
	return predicate.PendingSession(sql.FieldLTE(FieldDurationMins, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PendingSession) predicate.PendingSession {
	return predicate.PendingSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PendingSession) predicate.PendingSession {
	return predicate.PendingSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PendingSession) predicate.PendingSession {
	return predicate.PendingSession(sql.NotPredicates(p))
}
