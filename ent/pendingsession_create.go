// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stepsync/companion/ent/pendingsession"
)

// PendingSessionCreate is the builder for creating a PendingSession entity.
type PendingSessionCreate struct {
	config
	mutation *PendingSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *PendingSessionCreate) SetSessionID(v string) *PendingSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PendingSessionCreate) SetUserID(v string) *PendingSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetUserEmail sets the "user_email" field.
func (_c *PendingSessionCreate) SetUserEmail(v string) *PendingSessionCreate {
	_c.mutation.SetUserEmail(v)
	return _c
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_c *PendingSessionCreate) SetNillableUserEmail(v *string) *PendingSessionCreate {
	if v != nil {
		_c.SetUserEmail(*v)
	}
	return _c
}

// SetGameMode sets the "game_mode" field.
func (_c *PendingSessionCreate) SetGameMode(v string) *PendingSessionCreate {
	_c.mutation.SetGameMode(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *PendingSessionCreate) SetDifficulty(v string) *PendingSessionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PendingSessionCreate) SetStatus(v string) *PendingSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PendingSessionCreate) SetNillableStatus(v *string) *PendingSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAtMs sets the "created_at_ms" field.
func (_c *PendingSessionCreate) SetCreatedAtMs(v int64) *PendingSessionCreate {
	_c.mutation.SetCreatedAtMs(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *PendingSessionCreate) SetScore(v int) *PendingSessionCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *PendingSessionCreate) SetNillableScore(v *int) *PendingSessionCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetCalories sets the "calories" field.
func (_c *PendingSessionCreate) SetCalories(v int) *PendingSessionCreate {
	_c.mutation.SetCalories(v)
	return _c
}

// SetNillableCalories sets the "calories" field if the given value is not nil.
func (_c *PendingSessionCreate) SetNillableCalories(v *int) *PendingSessionCreate {
	if v != nil {
		_c.SetCalories(*v)
	}
	return _c
}

// SetDurationMins sets the "duration_mins" field.
func (_c *PendingSessionCreate) SetDurationMins(v int) *PendingSessionCreate {
	_c.mutation.SetDurationMins(v)
	return _c
}

// SetNillableDurationMins sets the "duration_mins" field if the given value is not nil.
func (_c *PendingSessionCreate) SetNillableDurationMins(v *int) *PendingSessionCreate {
	if v != nil {
		_c.SetDurationMins(*v)
	}
	return _c
}

// Mutation returns the PendingSessionMutation object of the builder.
func (_c *PendingSessionCreate) Mutation() *PendingSessionMutation {
	return _c.mutation
}

// Save creates the PendingSession in the database.
func (_c *PendingSessionCreate) Save(ctx context.Context) (*PendingSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PendingSessionCreate) SaveX(ctx context.Context) *PendingSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PendingSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pendingsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := pendingsession.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Calories(); !ok {
		v := pendingsession.DefaultCalories
		_c.mutation.SetCalories(v)
	}
	if _, ok := _c.mutation.DurationMins(); !ok {
		v := pendingsession.DefaultDurationMins
		_c.mutation.SetDurationMins(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PendingSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PendingSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := pendingsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PendingSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PendingSession.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := pendingsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PendingSession.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GameMode(); !ok {
		return &ValidationError{Name: "game_mode", err: errors.New(`ent: missing required field "PendingSession.game_mode"`)}
	}
	if v, ok := _c.mutation.GameMode(); ok {
		if err := pendingsession.GameModeValidator(v); err != nil {
			return &ValidationError{Name: "game_mode", err: fmt.Errorf(`ent: validator failed for field "PendingSession.game_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "PendingSession.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := pendingsession.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "PendingSession.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PendingSession.status"`)}
	}
	if _, ok := _c.mutation.CreatedAtMs(); !ok {
		return &ValidationError{Name: "created_at_ms", err: errors.New(`ent: missing required field "PendingSession.created_at_ms"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "PendingSession.score"`)}
	}
	if _, ok := _c.mutation.Calories(); !ok {
		return &ValidationError{Name: "calories", err: errors.New(`ent: missing required field "PendingSession.calories"`)}
	}
	if _, ok := _c.mutation.DurationMins(); !ok {
		return &ValidationError{Name: "duration_mins", err: errors.New(`ent: missing required field "PendingSession.duration_mins"`)}
	}
	return nil
}

func (_c *PendingSessionCreate) sqlSave(ctx context.Context) (*PendingSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PendingSessionCreate) createSpec() (*PendingSession, *sqlgraph.CreateSpec) {
	var (
		_node = &PendingSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pendingsession.Table, sqlgraph.NewFieldSpec(pendingsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(pendingsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(pendingsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.UserEmail(); ok {
		_spec.SetField(pendingsession.FieldUserEmail, field.TypeString, value)
		_node.UserEmail = value
	}
	if value, ok := _c.mutation.GameMode(); ok {
		_spec.SetField(pendingsession.FieldGameMode, field.TypeString, value)
		_node.GameMode = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(pendingsession.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pendingsession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAtMs(); ok {
		_spec.SetField(pendingsession.FieldCreatedAtMs, field.TypeInt64, value)
		_node.CreatedAtMs = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(pendingsession.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Calories(); ok {
		_spec.SetField(pendingsession.FieldCalories, field.TypeInt, value)
		_node.Calories = value
	}
	if value, ok := _c.mutation.DurationMins(); ok {
		_spec.SetField(pendingsession.FieldDurationMins, field.TypeInt, value)
		_node.DurationMins = value
	}
	return _node, _spec
}

// PendingSessionCreateBulk is the builder for creating many PendingSession entities in bulk.
type PendingSessionCreateBulk struct {
	config
	err      error
	builders []*PendingSessionCreate
}

// Save creates the PendingSession entities in the database.
func (_c *PendingSessionCreateBulk) Save(ctx context.Context) ([]*PendingSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PendingSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PendingSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PendingSessionCreateBulk) SaveX(ctx context.Context) []*PendingSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
