// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stepsync/companion/ent/userprofile"
)

// UserProfile is the model entity for the UserProfile schema.
type UserProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Identity provider user id
	UserID string `json:"user_id,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// Contact reference shared with the companion client
	Email string `json:"email,omitempty"`
	// Years; 0 means unknown
	Age int `json:"age,omitempty"`
	// WeightKg holds the value of the "weight_kg" field.
	WeightKg float64 `json:"weight_kg,omitempty"`
	// HeightCm holds the value of the "height_cm" field.
	HeightCm float64 `json:"height_cm,omitempty"`
	// Precomputed BMI; 0 means derive from weight/height
	Bmi float64 `json:"bmi,omitempty"`
	// RestingBpm holds the value of the "resting_bpm" field.
	RestingBpm int `json:"resting_bpm,omitempty"`
	// Workout sessions per week
	WorkoutFrequency int `json:"workout_frequency,omitempty"`
	// ProfilePic holds the value of the "profile_pic" field.
	ProfilePic   string `json:"profile_pic,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userprofile.FieldWeightKg, userprofile.FieldHeightCm, userprofile.FieldBmi:
			values[i] = new(sql.NullFloat64)
		case userprofile.FieldID, userprofile.FieldAge, userprofile.FieldRestingBpm, userprofile.FieldWorkoutFrequency:
			values[i] = new(sql.NullInt64)
		case userprofile.FieldUserID, userprofile.FieldUsername, userprofile.FieldEmail, userprofile.FieldProfilePic:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserProfile fields.
func (_m *UserProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userprofile.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userprofile.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case userprofile.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case userprofile.FieldAge:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field age", values[i])
			} else if value.Valid {
				_m.Age = int(value.Int64)
			}
		case userprofile.FieldWeightKg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight_kg", values[i])
			} else if value.Valid {
				_m.WeightKg = value.Float64
			}
		case userprofile.FieldHeightCm:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field height_cm", values[i])
			} else if value.Valid {
				_m.HeightCm = value.Float64
			}
		case userprofile.FieldBmi:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field bmi", values[i])
			} else if value.Valid {
				_m.Bmi = value.Float64
			}
		case userprofile.FieldRestingBpm:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field resting_bpm", values[i])
			} else if value.Valid {
				_m.RestingBpm = int(value.Int64)
			}
		case userprofile.FieldWorkoutFrequency:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field workout_frequency", values[i])
			} else if value.Valid {
				_m.WorkoutFrequency = int(value.Int64)
			}
		case userprofile.FieldProfilePic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_pic", values[i])
			} else if value.Valid {
				_m.ProfilePic = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserProfile.
// This includes values selected through modifiers, order, etc.
func (_m *UserProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserProfile.
// Note that you need to call UserProfile.Unwrap() before calling this method if this UserProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserProfile) Update() *UserProfileUpdateOne {
	return NewUserProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserProfile) Unwrap() *UserProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserProfile) String() string {
	var builder strings.Builder
	builder.WriteString("UserProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("age=")
	builder.WriteString(fmt.Sprintf("%v", _m.Age))
	builder.WriteString(", ")
	builder.WriteString("weight_kg=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeightKg))
	builder.WriteString(", ")
	builder.WriteString("height_cm=")
	builder.WriteString(fmt.Sprintf("%v", _m.HeightCm))
	builder.WriteString(", ")
	builder.WriteString("bmi=")
	builder.WriteString(fmt.Sprintf("%v", _m.Bmi))
	builder.WriteString(", ")
	builder.WriteString("resting_bpm=")
	builder.WriteString(fmt.Sprintf("%v", _m.RestingBpm))
	builder.WriteString(", ")
	builder.WriteString("workout_frequency=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkoutFrequency))
	builder.WriteString(", ")
	builder.WriteString("profile_pic=")
	builder.WriteString(_m.ProfilePic)
	builder.WriteByte(')')
	return builder.String()
}

// UserProfiles is a parsable slice of UserProfile.
type UserProfiles []*UserProfile
