// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stepsync/companion/ent/userprofile"
)

// UserProfileCreate is the builder for creating a UserProfile entity.
type UserProfileCreate struct {
	config
	mutation *UserProfileMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserProfileCreate) SetUserID(v string) *UserProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetUsername sets the "username" field.
func (_c *UserProfileCreate) SetUsername(v string) *UserProfileCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableUsername(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetUsername(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *UserProfileCreate) SetEmail(v string) *UserProfileCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableEmail(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetAge sets the "age" field.
func (_c *UserProfileCreate) SetAge(v int) *UserProfileCreate {
	_c.mutation.SetAge(v)
	return _c
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableAge(v *int) *UserProfileCreate {
	if v != nil {
		_c.SetAge(*v)
	}
	return _c
}

// SetWeightKg sets the "weight_kg" field.
func (_c *UserProfileCreate) SetWeightKg(v float64) *UserProfileCreate {
	_c.mutation.SetWeightKg(v)
	return _c
}

// SetNillableWeightKg sets the "weight_kg" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableWeightKg(v *float64) *UserProfileCreate {
	if v != nil {
		_c.SetWeightKg(*v)
	}
	return _c
}

// SetHeightCm sets the "height_cm" field.
func (_c *UserProfileCreate) SetHeightCm(v float64) *UserProfileCreate {
	_c.mutation.SetHeightCm(v)
	return _c
}

// SetNillableHeightCm sets the "height_cm" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableHeightCm(v *float64) *UserProfileCreate {
	if v != nil {
		_c.SetHeightCm(*v)
	}
	return _c
}

// SetBmi sets the "bmi" field.
func (_c *UserProfileCreate) SetBmi(v float64) *UserProfileCreate {
	_c.mutation.SetBmi(v)
	return _c
}

// SetNillableBmi sets the "bmi" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableBmi(v *float64) *UserProfileCreate {
	if v != nil {
		_c.SetBmi(*v)
	}
	return _c
}

// SetRestingBpm sets the "resting_bpm" field.
func (_c *UserProfileCreate) SetRestingBpm(v int) *UserProfileCreate {
	_c.mutation.SetRestingBpm(v)
	return _c
}

// SetNillableRestingBpm sets the "resting_bpm" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableRestingBpm(v *int) *UserProfileCreate {
	if v != nil {
		_c.SetRestingBpm(*v)
	}
	return _c
}

// SetWorkoutFrequency sets the "workout_frequency" field.
func (_c *UserProfileCreate) SetWorkoutFrequency(v int) *UserProfileCreate {
	_c.mutation.SetWorkoutFrequency(v)
	return _c
}

// SetNillableWorkoutFrequency sets the "workout_frequency" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableWorkoutFrequency(v *int) *UserProfileCreate {
	if v != nil {
		_c.SetWorkoutFrequency(*v)
	}
	return _c
}

// SetProfilePic sets the "profile_pic" field.
func (_c *UserProfileCreate) SetProfilePic(v string) *UserProfileCreate {
	_c.mutation.SetProfilePic(v)
	return _c
}

// SetNillableProfilePic sets the "profile_pic" field if the given value is not nil.
func (_c *UserProfileCreate) SetNillableProfilePic(v *string) *UserProfileCreate {
	if v != nil {
		_c.SetProfilePic(*v)
	}
	return _c
}

// Mutation returns the UserProfileMutation object of the builder.
func (_c *UserProfileCreate) Mutation() *UserProfileMutation {
	return _c.mutation
}

// Save creates the UserProfile in the database.
func (_c *UserProfileCreate) Save(ctx context.Context) (*UserProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserProfileCreate) SaveX(ctx context.Context) *UserProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserProfileCreate) defaults() {
	if _, ok := _c.mutation.Username(); !ok {
		v := userprofile.DefaultUsername
		_c.mutation.SetUsername(v)
	}
	if _, ok := _c.mutation.Age(); !ok {
		v := userprofile.DefaultAge
		_c.mutation.SetAge(v)
	}
	if _, ok := _c.mutation.WeightKg(); !ok {
		v := userprofile.DefaultWeightKg
		_c.mutation.SetWeightKg(v)
	}
	if _, ok := _c.mutation.HeightCm(); !ok {
		v := userprofile.DefaultHeightCm
		_c.mutation.SetHeightCm(v)
	}
	if _, ok := _c.mutation.Bmi(); !ok {
		v := userprofile.DefaultBmi
		_c.mutation.SetBmi(v)
	}
	if _, ok := _c.mutation.RestingBpm(); !ok {
		v := userprofile.DefaultRestingBpm
		_c.mutation.SetRestingBpm(v)
	}
	if _, ok := _c.mutation.WorkoutFrequency(); !ok {
		v := userprofile.DefaultWorkoutFrequency
		_c.mutation.SetWorkoutFrequency(v)
	}
	if _, ok := _c.mutation.ProfilePic(); !ok {
		v := userprofile.DefaultProfilePic
		_c.mutation.SetProfilePic(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserProfileCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserProfile.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userprofile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserProfile.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "UserProfile.username"`)}
	}
	if _, ok := _c.mutation.Age(); !ok {
		return &ValidationError{Name: "age", err: errors.New(`ent: missing required field "UserProfile.age"`)}
	}
	if _, ok := _c.mutation.WeightKg(); !ok {
		return &ValidationError{Name: "weight_kg", err: errors.New(`ent: missing required field "UserProfile.weight_kg"`)}
	}
	if _, ok := _c.mutation.HeightCm(); !ok {
		return &ValidationError{Name: "height_cm", err: errors.New(`ent: missing required field "UserProfile.height_cm"`)}
	}
	if _, ok := _c.mutation.Bmi(); !ok {
		return &ValidationError{Name: "bmi", err: errors.New(`ent: missing required field "UserProfile.bmi"`)}
	}
	if _, ok := _c.mutation.RestingBpm(); !ok {
		return &ValidationError{Name: "resting_bpm", err: errors.New(`ent: missing required field "UserProfile.resting_bpm"`)}
	}
	if _, ok := _c.mutation.WorkoutFrequency(); !ok {
		return &ValidationError{Name: "workout_frequency", err: errors.New(`ent: missing required field "UserProfile.workout_frequency"`)}
	}
	if _, ok := _c.mutation.ProfilePic(); !ok {
		return &ValidationError{Name: "profile_pic", err: errors.New(`ent: missing required field "UserProfile.profile_pic"`)}
	}
	return nil
}

func (_c *UserProfileCreate) sqlSave(ctx context.Context) (*UserProfile, error) {
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

func (_c *UserProfileCreate) createSpec() (*UserProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &UserProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userprofile.Table, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userprofile.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(userprofile.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(userprofile.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Age(); ok {
		_spec.SetField(userprofile.FieldAge, field.TypeInt, value)
		_node.Age = value
	}
	if value, ok := _c.mutation.WeightKg(); ok {
		_spec.SetField(userprofile.FieldWeightKg, field.TypeFloat64, value)
		_node.WeightKg = value
	}
	if value, ok := _c.mutation.HeightCm(); ok {
		_spec.SetField(userprofile.FieldHeightCm, field.TypeFloat64, value)
		_node.HeightCm = value
	}
	if value, ok := _c.mutation.Bmi(); ok {
		_spec.SetField(userprofile.FieldBmi, field.TypeFloat64, value)
		_node.Bmi = value
	}
	if value, ok := _c.mutation.RestingBpm(); ok {
		_spec.SetField(userprofile.FieldRestingBpm, field.TypeInt, value)
		_node.RestingBpm = value
	}
	if value, ok := _c.mutation.WorkoutFrequency(); ok {
		_spec.SetField(userprofile.FieldWorkoutFrequency, field.TypeInt, value)
		_node.WorkoutFrequency = value
	}
	if value, ok := _c.mutation.ProfilePic(); ok {
		_spec.SetField(userprofile.FieldProfilePic, field.TypeString, value)
		_node.ProfilePic = value
	}
	return _node, _spec
}

// UserProfileCreateBulk is the builder for creating many UserProfile entities in bulk.
type UserProfileCreateBulk struct {
	config
	err      error
	builders []*UserProfileCreate
}

// Save creates the UserProfile entities in the database.
func (_c *UserProfileCreateBulk) Save(ctx context.Context) ([]*UserProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserProfileMutation)
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
func (_c *UserProfileCreateBulk) SaveX(ctx context.Context) []*UserProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
