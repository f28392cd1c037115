// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stepsync/companion/ent/pendingsession"
	"github.com/stepsync/companion/ent/predicate"
)

// PendingSessionUpdate is the builder for updating PendingSession entities.
type PendingSessionUpdate struct {
	config
	hooks    []Hook
	mutation *PendingSessionMutation
}

// Where appends a list predicates to the PendingSessionUpdate builder.
func (_u *PendingSessionUpdate) Where(ps ...predicate.PendingSession) *PendingSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserEmail sets the "user_email" field.
func (_u *PendingSessionUpdate) SetUserEmail(v string) *PendingSessionUpdate {
	_u.mutation.SetUserEmail(v)
	return _u
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_u *PendingSessionUpdate) SetNillableUserEmail(v *string) *PendingSessionUpdate {
	if v != nil {
		_u.SetUserEmail(*v)
	}
	return _u
}

// ClearUserEmail clears the value of the "user_email" field.
func (_u *PendingSessionUpdate) ClearUserEmail() *PendingSessionUpdate {
	_u.mutation.ClearUserEmail()
	return _u
}

// SetGameMode sets the "game_mode" field.
func (_u *PendingSessionUpdate) SetGameMode(v string) *PendingSessionUpdate {
	_u.mutation.SetGameMode(v)
	return _u
}

// SetNillableGameMode sets the "game_mode" field if the given value is not nil.
func (_u *PendingSessionUpdate) SetNillableGameMode(v *string) *PendingSessionUpdate {
	if v != nil {
		_u.SetGameMode(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PendingSessionUpdate) SetDifficulty(v string) *PendingSessionUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PendingSessionUpdate) SetNillableDifficulty(v *string) *PendingSessionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingSessionUpdate) SetStatus(v string) *PendingSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingSessionUpdate) SetNillableStatus(v *string) *PendingSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *PendingSessionUpdate) SetScore(v int) *PendingSessionUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PendingSessionUpdate) SetNillableScore(v *int) *PendingSessionUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PendingSessionUpdate) AddScore(v int) *PendingSessionUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCalories sets the "calories" field.
func (_u *PendingSessionUpdate) SetCalories(v int) *PendingSessionUpdate {
	_u.mutation.ResetCalories()
	_u.mutation.SetCalories(v)
	return _u
}

// SetNillableCalories sets the "calories" field if the given value is not nil.
func (_u *PendingSessionUpdate) SetNillableCalories(v *int) *PendingSessionUpdate {
	if v != nil {
		_u.SetCalories(*v)
	}
	return _u
}

// AddCalories adds value to the "calories" field.
func (_u *PendingSessionUpdate) AddCalories(v int) *PendingSessionUpdate {
	_u.mutation.AddCalories(v)
	return _u
}

// SetDurationMins sets the "duration_mins" field.
func (_u *PendingSessionUpdate) SetDurationMins(v int) *PendingSessionUpdate {
	_u.mutation.ResetDurationMins()
	_u.mutation.SetDurationMins(v)
	return _u
}

// SetNillableDurationMins sets the "duration_mins" field if the given value is not nil.
func (_u *PendingSessionUpdate) SetNillableDurationMins(v *int) *PendingSessionUpdate {
	if v != nil {
		_u.SetDurationMins(*v)
	}
	return _u
}

// AddDurationMins adds value to the "duration_mins" field.
func (_u *PendingSessionUpdate) AddDurationMins(v int) *PendingSessionUpdate {
	_u.mutation.AddDurationMins(v)
	return _u
}

// Mutation returns the PendingSessionMutation object of the builder.
func (_u *PendingSessionUpdate) Mutation() *PendingSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PendingSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PendingSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingSessionUpdate) check() error {
	if v, ok := _u.mutation.GameMode(); ok {
		if err := pendingsession.GameModeValidator(v); err != nil {
			return &ValidationError{Name: "game_mode", err: fmt.Errorf(`ent: validator failed for field "PendingSession.game_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := pendingsession.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "PendingSession.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *PendingSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendingsession.Table, pendingsession.Columns, sqlgraph.NewFieldSpec(pendingsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserEmail(); ok {
		_spec.SetField(pendingsession.FieldUserEmail, field.TypeString, value)
	}
	if _u.mutation.UserEmailCleared() {
		_spec.ClearField(pendingsession.FieldUserEmail, field.TypeString)
	}
	if value, ok := _u.mutation.GameMode(); ok {
		_spec.SetField(pendingsession.FieldGameMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(pendingsession.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendingsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(pendingsession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(pendingsession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Calories(); ok {
		_spec.SetField(pendingsession.FieldCalories, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCalories(); ok {
		_spec.AddField(pendingsession.FieldCalories, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMins(); ok {
		_spec.SetField(pendingsession.FieldDurationMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMins(); ok {
		_spec.AddField(pendingsession.FieldDurationMins, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PendingSessionUpdateOne is the builder for updating a single PendingSession entity.
type PendingSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PendingSessionMutation
}

// SetUserEmail sets the "user_email" field.
func (_u *PendingSessionUpdateOne) SetUserEmail(v string) *PendingSessionUpdateOne {
	_u.mutation.SetUserEmail(v)
	return _u
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_u *PendingSessionUpdateOne) SetNillableUserEmail(v *string) *PendingSessionUpdateOne {
	if v != nil {
		_u.SetUserEmail(*v)
	}
	return _u
}

// ClearUserEmail clears the value of the "user_email" field.
func (_u *PendingSessionUpdateOne) ClearUserEmail() *PendingSessionUpdateOne {
	_u.mutation.ClearUserEmail()
	return _u
}

// SetGameMode sets the "game_mode" field.
func (_u *PendingSessionUpdateOne) SetGameMode(v string) *PendingSessionUpdateOne {
	_u.mutation.SetGameMode(v)
	return _u
}

// SetNillableGameMode sets the "game_mode" field if the given value is not nil.
func (_u *PendingSessionUpdateOne) SetNillableGameMode(v *string) *PendingSessionUpdateOne {
	if v != nil {
		_u.SetGameMode(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PendingSessionUpdateOne) SetDifficulty(v string) *PendingSessionUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PendingSessionUpdateOne) SetNillableDifficulty(v *string) *PendingSessionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingSessionUpdateOne) SetStatus(v string) *PendingSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingSessionUpdateOne) SetNillableStatus(v *string) *PendingSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *PendingSessionUpdateOne) SetScore(v int) *PendingSessionUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PendingSessionUpdateOne) SetNillableScore(v *int) *PendingSessionUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PendingSessionUpdateOne) AddScore(v int) *PendingSessionUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCalories sets the "calories" field.
func (_u *PendingSessionUpdateOne) SetCalories(v int) *PendingSessionUpdateOne {
	_u.mutation.ResetCalories()
	_u.mutation.SetCalories(v)
	return _u
}

// SetNillableCalories sets the "calories" field if the given value is not nil.
func (_u *PendingSessionUpdateOne) SetNillableCalories(v *int) *PendingSessionUpdateOne {
	if v != nil {
		_u.SetCalories(*v)
	}
	return _u
}

// AddCalories adds value to the "calories" field.
func (_u *PendingSessionUpdateOne) AddCalories(v int) *PendingSessionUpdateOne {
	_u.mutation.AddCalories(v)
	return _u
}

// SetDurationMins sets the "duration_mins" field.
func (_u *PendingSessionUpdateOne) SetDurationMins(v int) *PendingSessionUpdateOne {
	_u.mutation.ResetDurationMins()
	_u.mutation.SetDurationMins(v)
	return _u
}

// SetNillableDurationMins sets the "duration_mins" field if the given value is not nil.
func (_u *PendingSessionUpdateOne) SetNillableDurationMins(v *int) *PendingSessionUpdateOne {
	if v != nil {
		_u.SetDurationMins(*v)
	}
	return _u
}

// AddDurationMins adds value to the "duration_mins" field.
func (_u *PendingSessionUpdateOne) AddDurationMins(v int) *PendingSessionUpdateOne {
	_u.mutation.AddDurationMins(v)
	return _u
}

// Mutation returns the PendingSessionMutation object of the builder.
func (_u *PendingSessionUpdateOne) Mutation() *PendingSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PendingSessionUpdate builder.
func (_u *PendingSessionUpdateOne) Where(ps ...predicate.PendingSession) *PendingSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PendingSessionUpdateOne) Select(field string, fields ...string) *PendingSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PendingSession entity.
func (_u *PendingSessionUpdateOne) Save(ctx context.Context) (*PendingSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingSessionUpdateOne) SaveX(ctx context.Context) *PendingSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PendingSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingSessionUpdateOne) check() error {
	if v, ok := _u.mutation.GameMode(); ok {
		if err := pendingsession.GameModeValidator(v); err != nil {
			return &ValidationError{Name: "game_mode", err: fmt.Errorf(`ent: validator failed for field "PendingSession.game_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := pendingsession.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "PendingSession.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *PendingSessionUpdateOne) sqlSave(ctx context.Context) (_node *PendingSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendingsession.Table, pendingsession.Columns, sqlgraph.NewFieldSpec(pendingsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PendingSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pendingsession.FieldID)
		for _, f := range fields {
			if !pendingsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pendingsession.FieldID {
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
	if value, ok := _u.mutation.UserEmail(); ok {
		_spec.SetField(pendingsession.FieldUserEmail, field.TypeString, value)
	}
	if _u.mutation.UserEmailCleared() {
		_spec.ClearField(pendingsession.FieldUserEmail, field.TypeString)
	}
	if value, ok := _u.mutation.GameMode(); ok {
		_spec.SetField(pendingsession.FieldGameMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(pendingsession.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendingsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(pendingsession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(pendingsession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Calories(); ok {
		_spec.SetField(pendingsession.FieldCalories, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCalories(); ok {
		_spec.AddField(pendingsession.FieldCalories, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMins(); ok {
		_spec.SetField(pendingsession.FieldDurationMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMins(); ok {
		_spec.AddField(pendingsession.FieldDurationMins, field.TypeInt, value)
	}
	_node = &PendingSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
