// Code generated by ent, DO NOT EDIT.

package userprofile

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userprofile type in the database.
	Label = "user_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldAge holds the string denoting the age field in the database.
	FieldAge = "age"
	// FieldWeightKg holds the string denoting the weight_kg field in the database.
	FieldWeightKg = "weight_kg"
	// FieldHeightCm holds the string denoting the height_cm field in the database.
	FieldHeightCm = "height_cm"
	// FieldBmi holds the string denoting the bmi field in the database.
	FieldBmi = "bmi"
	// FieldRestingBpm holds the string denoting the resting_bpm field in the database.
	FieldRestingBpm = "resting_bpm"
	// FieldWorkoutFrequency holds the string denoting the workout_frequency field in the database.
	FieldWorkoutFrequency = "workout_frequency"
	// FieldProfilePic holds the string denoting the profile_pic field in the database.
	FieldProfilePic = "profile_pic"
	// Table holds the table name of the userprofile in the database.
	Table = "user_profiles"
)

// Columns holds all SQL columns for userprofile fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldUsername,
	FieldEmail,
	FieldAge,
	FieldWeightKg,
	FieldHeightCm,
	FieldBmi,
	FieldRestingBpm,
	FieldWorkoutFrequency,
	FieldProfilePic,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultUsername holds the default value on creation for the "username" field.
	DefaultUsername string
	// DefaultAge holds the default value on creation for the "age" field.
	DefaultAge int
	// DefaultWeightKg holds the default value on creation for the "weight_kg" field.
	DefaultWeightKg float64
	// DefaultHeightCm holds the default value on creation for the "height_cm" field.
	DefaultHeightCm float64
	// DefaultBmi holds the default value on creation for the "bmi" field.
	DefaultBmi float64
	// DefaultRestingBpm holds the default value on creation for the "resting_bpm" field.
	DefaultRestingBpm int
	// DefaultWorkoutFrequency holds the default value on creation for the "workout_frequency" field.
	DefaultWorkoutFrequency int
	// DefaultProfilePic holds the default value on creation for the "profile_pic" field.
	DefaultProfilePic string
)

// OrderOption defines the ordering options for the UserProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByAge orders the results by the age field.
func ByAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAge, opts...).ToFunc()
}

// ByWeightKg orders the results by the weight_kg field.
func ByWeightKg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeightKg, opts...).ToFunc()
}

// ByHeightCm orders the results by the height_cm field.
func ByHeightCm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeightCm, opts...).ToFunc()
}

// ByBmi orders the results by the bmi field.
func ByBmi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBmi, opts...).ToFunc()
}

// ByRestingBpm orders the results by the resting_bpm field.
func ByRestingBpm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRestingBpm, opts...).ToFunc()
}

// ByWorkoutFrequency orders the results by the workout_frequency field.
func ByWorkoutFrequency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkoutFrequency, opts...).ToFunc()
}

// ByProfilePic orders the results by the profile_pic field.
func ByProfilePic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfilePic, opts...).ToFunc()
}
