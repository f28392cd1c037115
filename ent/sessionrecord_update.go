// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stepsync/companion/ent/predicate"
	"github.com/stepsync/companion/ent/sessionrecord"
)

// SessionRecordUpdate is the builder for updating SessionRecord entities.
type SessionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SessionRecordMutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdate) Where(ps ...predicate.SessionRecord) *SessionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGameMode sets the "game_mode" field.
func (_u *SessionRecordUpdate) SetGameMode(v string) *SessionRecordUpdate {
	_u.mutation.SetGameMode(v)
	return _u
}

// SetNillableGameMode sets the "game_mode" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableGameMode(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetGameMode(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SessionRecordUpdate) SetDifficulty(v string) *SessionRecordUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableDifficulty(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SessionRecordUpdate) SetScore(v int) *SessionRecordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableScore(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SessionRecordUpdate) AddScore(v int) *SessionRecordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCalories sets the "calories" field.
func (_u *SessionRecordUpdate) SetCalories(v int) *SessionRecordUpdate {
	_u.mutation.ResetCalories()
	_u.mutation.SetCalories(v)
	return _u
}

// SetNillableCalories sets the "calories" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableCalories(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetCalories(*v)
	}
	return _u
}

// AddCalories adds value to the "calories" field.
func (_u *SessionRecordUpdate) AddCalories(v int) *SessionRecordUpdate {
	_u.mutation.AddCalories(v)
	return _u
}

// SetDurationMins sets the "duration_mins" field.
func (_u *SessionRecordUpdate) SetDurationMins(v int) *SessionRecordUpdate {
	_u.mutation.ResetDurationMins()
	_u.mutation.SetDurationMins(v)
	return _u
}

// SetNillableDurationMins sets the "duration_mins" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableDurationMins(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetDurationMins(*v)
	}
	return _u
}

// AddDurationMins adds value to the "duration_mins" field.
func (_u *SessionRecordUpdate) AddDurationMins(v int) *SessionRecordUpdate {
	_u.mutation.AddDurationMins(v)
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdate) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdate) check() error {
	if v, ok := _u.mutation.GameMode(); ok {
		if err := sessionrecord.GameModeValidator(v); err != nil {
			return &ValidationError{Name: "game_mode", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.game_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := sessionrecord.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GameMode(); ok {
		_spec.SetField(sessionrecord.FieldGameMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(sessionrecord.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sessionrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(sessionrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Calories(); ok {
		_spec.SetField(sessionrecord.FieldCalories, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCalories(); ok {
		_spec.AddField(sessionrecord.FieldCalories, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMins(); ok {
		_spec.SetField(sessionrecord.FieldDurationMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMins(); ok {
		_spec.AddField(sessionrecord.FieldDurationMins, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionRecordUpdateOne is the builder for updating a single SessionRecord entity.
type SessionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionRecordMutation
}

// SetGameMode sets the "game_mode" field.
func (_u *SessionRecordUpdateOne) SetGameMode(v string) *SessionRecordUpdateOne {
	_u.mutation.SetGameMode(v)
	return _u
}

// SetNillableGameMode sets the "game_mode" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableGameMode(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetGameMode(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SessionRecordUpdateOne) SetDifficulty(v string) *SessionRecordUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableDifficulty(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SessionRecordUpdateOne) SetScore(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableScore(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SessionRecordUpdateOne) AddScore(v int) *SessionRecordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCalories sets the "calories" field.
func (_u *SessionRecordUpdateOne) SetCalories(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetCalories()
	_u.mutation.SetCalories(v)
	return _u
}

// SetNillableCalories sets the "calories" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableCalories(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetCalories(*v)
	}
	return _u
}

// AddCalories adds value to the "calories" field.
func (_u *SessionRecordUpdateOne) AddCalories(v int) *SessionRecordUpdateOne {
	_u.mutation.AddCalories(v)
	return _u
}

// SetDurationMins sets the "duration_mins" field.
func (_u *SessionRecordUpdateOne) SetDurationMins(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetDurationMins()
	_u.mutation.SetDurationMins(v)
	return _u
}

// SetNillableDurationMins sets the "duration_mins" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableDurationMins(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetDurationMins(*v)
	}
	return _u
}

// AddDurationMins adds value to the "duration_mins" field.
func (_u *SessionRecordUpdateOne) AddDurationMins(v int) *SessionRecordUpdateOne {
	_u.mutation.AddDurationMins(v)
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdateOne) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdateOne) Where(ps ...predicate.SessionRecord) *SessionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionRecordUpdateOne) Select(field string, fields ...string) *SessionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionRecord entity.
func (_u *SessionRecordUpdateOne) Save(ctx context.Context) (*SessionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) SaveX(ctx context.Context) *SessionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.GameMode(); ok {
		if err := sessionrecord.GameModeValidator(v); err != nil {
			return &ValidationError{Name: "game_mode", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.game_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := sessionrecord.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdateOne) sqlSave(ctx context.Context) (_node *SessionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionrecord.FieldID)
		for _, f := range fields {
			if !sessionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GameMode(); ok {
		_spec.SetField(sessionrecord.FieldGameMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(sessionrecord.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sessionrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(sessionrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Calories(); ok {
		_spec.SetField(sessionrecord.FieldCalories, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCalories(); ok {
		_spec.AddField(sessionrecord.FieldCalories, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMins(); ok {
		_spec.SetField(sessionrecord.FieldDurationMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMins(); ok {
		_spec.AddField(sessionrecord.FieldDurationMins, field.TypeInt, value)
	}
	_node = &SessionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
