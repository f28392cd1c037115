// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stepsync/companion/ent/pendingsession"
)

// PendingSession is the model entity for the PendingSession schema.
type PendingSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Owning user
	UserID string `json:"user_id,omitempty"`
	// Contact reference for the companion client
	UserEmail string `json:"user_email,omitempty"`
	// GameMode holds the value of the "game_mode" field.
	GameMode string `json:"game_mode,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty string `json:"difficulty,omitempty"`
	// pending, in_progress or completed
	Status string `json:"status,omitempty"`
	// Unix MILLISECONDS at creation; history records use seconds
	CreatedAtMs int64 `json:"created_at_ms,omitempty"`
	// Set on completion only
	Score int `json:"score,omitempty"`
	// Set on completion only
	Calories int `json:"calories,omitempty"`
	// Set on completion only
	DurationMins int `json:"duration_mins,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PendingSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pendingsession.FieldID, pendingsession.FieldCreatedAtMs, pendingsession.FieldScore, pendingsession.FieldCalories, pendingsession.FieldDurationMins:
			values[i] = new(sql.NullInt64)
		case pendingsession.FieldSessionID, pendingsession.FieldUserID, pendingsession.FieldUserEmail, pendingsession.FieldGameMode, pendingsession.FieldDifficulty, pendingsession.FieldStatus:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PendingSession fields.
func (_m *PendingSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pendingsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pendingsession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case pendingsession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case pendingsession.FieldUserEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_email", values[i])
			} else if value.Valid {
				_m.UserEmail = value.String
			}
		case pendingsession.FieldGameMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field game_mode", values[i])
			} else if value.Valid {
				_m.GameMode = value.String
			}
		case pendingsession.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case pendingsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case pendingsession.FieldCreatedAtMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_at_ms", values[i])
			} else if value.Valid {
				_m.CreatedAtMs = value.Int64
			}
		case pendingsession.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case pendingsession.FieldCalories:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field calories", values[i])
			} else if value.Valid {
				_m.Calories = int(value.Int64)
			}
		case pendingsession.FieldDurationMins:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_mins", values[i])
			} else if value.Valid {
				_m.DurationMins = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PendingSession.
// This includes values selected through modifiers, order, etc.
func (_m *PendingSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PendingSession.
// Note that you need to call PendingSession.Unwrap() before calling this method if this PendingSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PendingSession) Update() *PendingSessionUpdateOne {
	return NewPendingSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PendingSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PendingSession) Unwrap() *PendingSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PendingSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PendingSession) String() string {
	var builder strings.Builder
	builder.WriteString("PendingSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("user_email=")
	builder.WriteString(_m.UserEmail)
	builder.WriteString(", ")
	builder.WriteString("game_mode=")
	builder.WriteString(_m.GameMode)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedAtMs))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("calories=")
	builder.WriteString(fmt.Sprintf("%v", _m.Calories))
	builder.WriteString(", ")
	builder.WriteString("duration_mins=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMins))
	builder.WriteByte(')')
	return builder.String()
}

// PendingSessions is a parsable slice of PendingSession.
type PendingSessions []*PendingSession
