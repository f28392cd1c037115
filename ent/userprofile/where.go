// Code generated by ent, DO NOT EDIT.

package userprofile

import (
	"entgo.io/ent/dialect/sql"
	"github.com/stepsync/companion/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldUserID, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldUsername, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldEmail, v))
}

// Age applies equality check predicate on the "age" field. It's identical to AgeEQ.
func Age(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldAge, v))
}

// WeightKg applies equality check predicate on the "weight_kg" field. It's identical to WeightKgEQ.
func WeightKg(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldWeightKg, v))
}

// HeightCm applies equality check predicate on the "height_cm" field. It's identical to HeightCmEQ.
func HeightCm(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldHeightCm, v))
}

// Bmi applies equality check predicate on the "bmi" field. It's identical to BmiEQ.
func Bmi(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldBmi, v))
}

// RestingBpm applies equality check predicate on the "resting_bpm" field. It's identical to RestingBpmEQ.
func RestingBpm(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldRestingBpm, v))
}

// WorkoutFrequency applies equality check predicate on the "workout_frequency" field. It's identical to WorkoutFrequencyEQ.
func WorkoutFrequency(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldWorkoutFrequency, v))
}

// ProfilePic applies equality check predicate on the "profile_pic" field. It's identical to ProfilePicEQ.
func ProfilePic(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldProfilePic, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldUserID, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldUsername, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldEmail, v))
}

// AgeEQ applies the EQ predicate on the "age" field.
func AgeEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldAge, v))
}

// AgeNEQ applies the NEQ predicate on the "age" field.
func AgeNEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldAge, v))
}

// AgeIn applies the In predicate on the "age" field.
func AgeIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldAge, vs...))
}

// AgeNotIn applies the NotIn predicate on the "age" field.
func AgeNotIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldAge, vs...))
}

// AgeGT applies the GT predicate on the "age" field.
func AgeGT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldAge, v))
}

// AgeGTE applies the GTE predicate on the "age" field.
func AgeGTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldAge, v))
}

// AgeLT applies the LT predicate on the "age" field.
func AgeLT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldAge, v))
}

// AgeLTE applies the LTE predicate on the "age" field.
func AgeLTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldAge, v))
}

// WeightKgEQ applies the EQ predicate on the "weight_kg" field.
func WeightKgEQ(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldWeightKg, v))
}

// WeightKgNEQ applies the NEQ predicate on the "weight_kg" field.
func WeightKgNEQ(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldWeightKg, v))
}

// WeightKgIn applies the In predicate on the "weight_kg" field.
func WeightKgIn(vs ...float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldWeightKg, vs...))
}

// WeightKgNotIn applies the NotIn predicate on the "weight_kg" field.
func WeightKgNotIn(vs ...float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldWeightKg, vs...))
}

// WeightKgGT applies the GT predicate on the "weight_kg" field.
func WeightKgGT(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldWeightKg, v))
}

// WeightKgGTE applies the GTE predicate on the "weight_kg" field.
func WeightKgGTE(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldWeightKg, v))
}

// WeightKgLT applies the LT predicate on the "weight_kg" field.
func WeightKgLT(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldWeightKg, v))
}

// WeightKgLTE applies the LTE predicate on the "weight_kg" field.
func WeightKgLTE(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldWeightKg, v))
}

// HeightCmEQ applies the EQ predicate on the "height_cm" field.
func HeightCmEQ(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldHeightCm, v))
}

// HeightCmNEQ applies the NEQ predicate on the "height_cm" field.
func HeightCmNEQ(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldHeightCm, v))
}

// HeightCmIn applies the In predicate on the "height_cm" field.
func HeightCmIn(vs ...float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldHeightCm, vs...))
}

// HeightCmNotIn applies the NotIn predicate on the "height_cm" field.
func HeightCmNotIn(vs ...float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldHeightCm, vs...))
}

// HeightCmGT applies the GT predicate on the "height_cm" field.
func HeightCmGT(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldHeightCm, v))
}

// HeightCmGTE applies the GTE predicate on the "height_cm" field.
func HeightCmGTE(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldHeightCm, v))
}

// HeightCmLT applies the LT predicate on the "height_cm" field.
func HeightCmLT(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldHeightCm, v))
}

// HeightCmLTE applies the LTE predicate on the "height_cm" field.
func HeightCmLTE(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldHeightCm, v))
}

// BmiEQ applies the EQ predicate on the "bmi" field.
func BmiEQ(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldBmi, v))
}

// BmiNEQ applies the NEQ predicate on the "bmi" field.
func BmiNEQ(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldBmi, v))
}

// BmiIn applies the In predicate on the "bmi" field.
func BmiIn(vs ...float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldBmi, vs...))
}

// BmiNotIn applies the NotIn predicate on the "bmi" field.
func BmiNotIn(vs ...float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldBmi, vs...))
}

// BmiGT applies the GT predicate on the "bmi" field.
func BmiGT(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldBmi, v))
}

// BmiGTE applies the GTE predicate on the "bmi" field.
func BmiGTE(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldBmi, v))
}

// BmiLT applies the LT predicate on the "bmi" field.
func BmiLT(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldBmi, v))
}

// BmiLTE applies the LTE predicate on the "bmi" field.
func BmiLTE(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldBmi, v))
}

// RestingBpmEQ applies the EQ predicate on the "resting_bpm" field.
func RestingBpmEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldRestingBpm, v))
}

// RestingBpmNEQ applies the NEQ predicate on the "resting_bpm" field.
func RestingBpmNEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldRestingBpm, v))
}

// RestingBpmIn applies the In predicate on the "resting_bpm" field.
func RestingBpmIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldRestingBpm, vs...))
}

// RestingBpmNotIn applies the NotIn predicate on the "resting_bpm" field.
func RestingBpmNotIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldRestingBpm, vs...))
}

// RestingBpmGT applies the GT predicate on the "resting_bpm" field.
func RestingBpmGT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldRestingBpm, v))
}

// RestingBpmGTE applies the GTE predicate on the "resting_bpm" field.
func RestingBpmGTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldRestingBpm, v))
}

// RestingBpmLT applies the LT predicate on the "resting_bpm" field.
func RestingBpmLT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldRestingBpm, v))
}

// RestingBpmLTE applies the LTE predicate on the "resting_bpm" field.
func RestingBpmLTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldRestingBpm, v))
}

// WorkoutFrequencyEQ applies the EQ predicate on the "workout_frequency" field.
func WorkoutFrequencyEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldWorkoutFrequency, v))
}

// WorkoutFrequencyNEQ applies the NEQ predicate on the "workout_frequency" field.
func WorkoutFrequencyNEQ(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldWorkoutFrequency, v))
}

// WorkoutFrequencyIn applies the In predicate on the "workout_frequency" field.
func WorkoutFrequencyIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldWorkoutFrequency, vs...))
}

// WorkoutFrequencyNotIn applies the NotIn predicate on the "workout_frequency" field.
func WorkoutFrequencyNotIn(vs ...int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldWorkoutFrequency, vs...))
}

// WorkoutFrequencyGT applies the GT predicate on the "workout_frequency" field.
func WorkoutFrequencyGT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldWorkoutFrequency, v))
}

// WorkoutFrequencyGTE applies the GTE predicate on the "workout_frequency" field.
func WorkoutFrequencyGTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldWorkoutFrequency, v))
}

// WorkoutFrequencyLT applies the LT predicate on the "workout_frequency" field.
func WorkoutFrequencyLT(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldWorkoutFrequency, v))
}

// WorkoutFrequencyLTE applies the LTE predicate on the "workout_frequency" field.
func WorkoutFrequencyLTE(v int) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldWorkoutFrequency, v))
}

// ProfilePicEQ applies the EQ predicate on the "profile_pic" field.
func ProfilePicEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldProfilePic, v))
}

// ProfilePicNEQ applies the NEQ predicate on the "profile_pic" field.
func ProfilePicNEQ(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldProfilePic, v))
}

// ProfilePicIn applies the In predicate on the "profile_pic" field.
func ProfilePicIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldProfilePic, vs...))
}

// ProfilePicNotIn applies the NotIn predicate on the "profile_pic" field.
func ProfilePicNotIn(vs ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldProfilePic, vs...))
}

// ProfilePicGT applies the GT predicate on the "profile_pic" field.
func ProfilePicGT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldProfilePic, v))
}

// ProfilePicGTE applies the GTE predicate on the "profile_pic" field.
func ProfilePicGTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldProfilePic, v))
}

// ProfilePicLT applies the LT predicate on the "profile_pic" field.
func ProfilePicLT(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldProfilePic, v))
}

// ProfilePicLTE applies the LTE predicate on the "profile_pic" field.
func ProfilePicLTE(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldProfilePic, v))
}

// ProfilePicContains applies the Contains predicate on the "profile_pic" field.
func ProfilePicContains(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContains(FieldProfilePic, v))
}

// ProfilePicHasPrefix applies the HasPrefix predicate on the "profile_pic" field.
func ProfilePicHasPrefix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasPrefix(FieldProfilePic, v))
}

// ProfilePicHasSuffix applies the HasSuffix predicate on the "profile_pic" field.
func ProfilePicHasSuffix(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldHasSuffix(FieldProfilePic, v))
}

// ProfilePicEqualFold applies the EqualFold predicate on the "profile_pic" field.
func ProfilePicEqualFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldProfilePic, v))
}

// ProfilePicContainsFold applies the ContainsFold predicate on the "profile_pic" field.
func ProfilePicContainsFold(v string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldProfilePic, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserProfile) predicate.UserProfile {
	return predicate.UserProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserProfile) predicate.UserProfile {
	return predicate.UserProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserProfile) predicate.UserProfile {
	return predicate.UserProfile(sql.NotPredicates(p))
}
