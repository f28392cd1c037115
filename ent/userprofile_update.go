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
	"github.com/stepsync/companion/ent/userprofile"
)

// UserProfileUpdate is the builder for updating UserProfile entities.
type UserProfileUpdate struct {
	config
	hooks    []Hook
	mutation *UserProfileMutation
}

// Where appends a list predicates to the UserProfileUpdate builder.
func (_u *UserProfileUpdate) Where(ps ...predicate.UserProfile) *UserProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUsername sets the "username" field.
func (_u *UserProfileUpdate) SetUsername(v string) *UserProfileUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableUsername(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserProfileUpdate) SetEmail(v string) *UserProfileUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableEmail(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *UserProfileUpdate) ClearEmail() *UserProfileUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetAge sets the "age" field.
func (_u *UserProfileUpdate) SetAge(v int) *UserProfileUpdate {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableAge(v *int) *UserProfileUpdate {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *UserProfileUpdate) AddAge(v int) *UserProfileUpdate {
	_u.mutation.AddAge(v)
	return _u
}

// SetWeightKg sets the "weight_kg" field.
func (_u *UserProfileUpdate) SetWeightKg(v float64) *UserProfileUpdate {
	_u.mutation.ResetWeightKg()
	_u.mutation.SetWeightKg(v)
	return _u
}

// SetNillableWeightKg sets the "weight_kg" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableWeightKg(v *float64) *UserProfileUpdate {
	if v != nil {
		_u.SetWeightKg(*v)
	}
	return _u
}

// AddWeightKg adds value to the "weight_kg" field.
func (_u *UserProfileUpdate) AddWeightKg(v float64) *UserProfileUpdate {
	_u.mutation.AddWeightKg(v)
	return _u
}

// SetHeightCm sets the "height_cm" field.
func (_u *UserProfileUpdate) SetHeightCm(v float64) *UserProfileUpdate {
	_u.mutation.ResetHeightCm()
	_u.mutation.SetHeightCm(v)
	return _u
}

// SetNillableHeightCm sets the "height_cm" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableHeightCm(v *float64) *UserProfileUpdate {
	if v != nil {
		_u.SetHeightCm(*v)
	}
	return _u
}

// AddHeightCm adds value to the "height_cm" field.
func (_u *UserProfileUpdate) AddHeightCm(v float64) *UserProfileUpdate {
	_u.mutation.AddHeightCm(v)
	return _u
}

// SetBmi sets the "bmi" field.
func (_u *UserProfileUpdate) SetBmi(v float64) *UserProfileUpdate {
	_u.mutation.ResetBmi()
	_u.mutation.SetBmi(v)
	return _u
}

// SetNillableBmi sets the "bmi" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableBmi(v *float64) *UserProfileUpdate {
	if v != nil {
		_u.SetBmi(*v)
	}
	return _u
}

// AddBmi adds value to the "bmi" field.
func (_u *UserProfileUpdate) AddBmi(v float64) *UserProfileUpdate {
	_u.mutation.AddBmi(v)
	return _u
}

// SetRestingBpm sets the "resting_bpm" field.
func (_u *UserProfileUpdate) SetRestingBpm(v int) *UserProfileUpdate {
	_u.mutation.ResetRestingBpm()
	_u.mutation.SetRestingBpm(v)
	return _u
}

// SetNillableRestingBpm sets the "resting_bpm" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableRestingBpm(v *int) *UserProfileUpdate {
	if v != nil {
		_u.SetRestingBpm(*v)
	}
	return _u
}

// AddRestingBpm adds value to the "resting_bpm" field.
func (_u *UserProfileUpdate) AddRestingBpm(v int) *UserProfileUpdate {
	_u.mutation.AddRestingBpm(v)
	return _u
}

// SetWorkoutFrequency sets the "workout_frequency" field.
func (_u *UserProfileUpdate) SetWorkoutFrequency(v int) *UserProfileUpdate {
	_u.mutation.ResetWorkoutFrequency()
	_u.mutation.SetWorkoutFrequency(v)
	return _u
}

// SetNillableWorkoutFrequency sets the "workout_frequency" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableWorkoutFrequency(v *int) *UserProfileUpdate {
	if v != nil {
		_u.SetWorkoutFrequency(*v)
	}
	return _u
}

// AddWorkoutFrequency adds value to the "workout_frequency" field.
func (_u *UserProfileUpdate) AddWorkoutFrequency(v int) *UserProfileUpdate {
	_u.mutation.AddWorkoutFrequency(v)
	return _u
}

// SetProfilePic sets the "profile_pic" field.
func (_u *UserProfileUpdate) SetProfilePic(v string) *UserProfileUpdate {
	_u.mutation.SetProfilePic(v)
	return _u
}

// SetNillableProfilePic sets the "profile_pic" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableProfilePic(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetProfilePic(*v)
	}
	return _u
}

// Mutation returns the UserProfileMutation object of the builder.
func (_u *UserProfileUpdate) Mutation() *UserProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userprofile.Table, userprofile.Columns, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(userprofile.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(userprofile.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(userprofile.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(userprofile.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(userprofile.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeightKg(); ok {
		_spec.SetField(userprofile.FieldWeightKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightKg(); ok {
		_spec.AddField(userprofile.FieldWeightKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HeightCm(); ok {
		_spec.SetField(userprofile.FieldHeightCm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeightCm(); ok {
		_spec.AddField(userprofile.FieldHeightCm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Bmi(); ok {
		_spec.SetField(userprofile.FieldBmi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBmi(); ok {
		_spec.AddField(userprofile.FieldBmi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RestingBpm(); ok {
		_spec.SetField(userprofile.FieldRestingBpm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRestingBpm(); ok {
		_spec.AddField(userprofile.FieldRestingBpm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorkoutFrequency(); ok {
		_spec.SetField(userprofile.FieldWorkoutFrequency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWorkoutFrequency(); ok {
		_spec.AddField(userprofile.FieldWorkoutFrequency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProfilePic(); ok {
		_spec.SetField(userprofile.FieldProfilePic, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserProfileUpdateOne is the builder for updating a single UserProfile entity.
type UserProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserProfileMutation
}

// SetUsername sets the "username" field.
func (_u *UserProfileUpdateOne) SetUsername(v string) *UserProfileUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableUsername(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserProfileUpdateOne) SetEmail(v string) *UserProfileUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableEmail(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *UserProfileUpdateOne) ClearEmail() *UserProfileUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetAge sets the "age" field.
func (_u *UserProfileUpdateOne) SetAge(v int) *UserProfileUpdateOne {
	_u.mutation.ResetAge()
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableAge(v *int) *UserProfileUpdateOne {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// AddAge adds value to the "age" field.
func (_u *UserProfileUpdateOne) AddAge(v int) *UserProfileUpdateOne {
	_u.mutation.AddAge(v)
	return _u
}

// SetWeightKg sets the "weight_kg" field.
func (_u *UserProfileUpdateOne) SetWeightKg(v float64) *UserProfileUpdateOne {
	_u.mutation.ResetWeightKg()
	_u.mutation.SetWeightKg(v)
	return _u
}

// SetNillableWeightKg sets the "weight_kg" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableWeightKg(v *float64) *UserProfileUpdateOne {
	if v != nil {
		_u.SetWeightKg(*v)
	}
	return _u
}

// AddWeightKg adds value to the "weight_kg" field.
func (_u *UserProfileUpdateOne) AddWeightKg(v float64) *UserProfileUpdateOne {
	_u.mutation.AddWeightKg(v)
	return _u
}

// SetHeightCm sets the "height_cm" field.
func (_u *UserProfileUpdateOne) SetHeightCm(v float64) *UserProfileUpdateOne {
	_u.mutation.ResetHeightCm()
	_u.mutation.SetHeightCm(v)
	return _u
}

// SetNillableHeightCm sets the "height_cm" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableHeightCm(v *float64) *UserProfileUpdateOne {
	if v != nil {
		_u.SetHeightCm(*v)
	}
	return _u
}

// AddHeightCm adds value to the "height_cm" field.
func (_u *UserProfileUpdateOne) AddHeightCm(v float64) *UserProfileUpdateOne {
	_u.mutation.AddHeightCm(v)
	return _u
}

// SetBmi sets the "bmi" field.
func (_u *UserProfileUpdateOne) SetBmi(v float64) *UserProfileUpdateOne {
	_u.mutation.ResetBmi()
	_u.mutation.SetBmi(v)
	return _u
}

// SetNillableBmi sets the "bmi" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableBmi(v *float64) *UserProfileUpdateOne {
	if v != nil {
		_u.SetBmi(*v)
	}
	return _u
}

// AddBmi adds value to the "bmi" field.
func (_u *UserProfileUpdateOne) AddBmi(v float64) *UserProfileUpdateOne {
	_u.mutation.AddBmi(v)
	return _u
}

// SetRestingBpm sets the "resting_bpm" field.
func (_u *UserProfileUpdateOne) SetRestingBpm(v int) *UserProfileUpdateOne {
	_u.mutation.ResetRestingBpm()
	_u.mutation.SetRestingBpm(v)
	return _u
}

// SetNillableRestingBpm sets the "resting_bpm" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableRestingBpm(v *int) *UserProfileUpdateOne {
	if v != nil {
		_u.SetRestingBpm(*v)
	}
	return _u
}

// AddRestingBpm adds value to the "resting_bpm" field.
func (_u *UserProfileUpdateOne) AddRestingBpm(v int) *UserProfileUpdateOne {
	_u.mutation.AddRestingBpm(v)
	return _u
}

// SetWorkoutFrequency sets the "workout_frequency" field.
func (_u *UserProfileUpdateOne) SetWorkoutFrequency(v int) *UserProfileUpdateOne {
	_u.mutation.ResetWorkoutFrequency()
	_u.mutation.SetWorkoutFrequency(v)
	return _u
}

// SetNillableWorkoutFrequency sets the "workout_frequency" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableWorkoutFrequency(v *int) *UserProfileUpdateOne {
	if v != nil {
		_u.SetWorkoutFrequency(*v)
	}
	return _u
}

// AddWorkoutFrequency adds value to the "workout_frequency" field.
func (_u *UserProfileUpdateOne) AddWorkoutFrequency(v int) *UserProfileUpdateOne {
	_u.mutation.AddWorkoutFrequency(v)
	return _u
}

// SetProfilePic sets the "profile_pic" field.
func (_u *UserProfileUpdateOne) SetProfilePic(v string) *UserProfileUpdateOne {
	_u.mutation.SetProfilePic(v)
	return _u
}

// SetNillableProfilePic sets the "profile_pic" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableProfilePic(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetProfilePic(*v)
	}
	return _u
}

// Mutation returns the UserProfileMutation object of the builder.
func (_u *UserProfileUpdateOne) Mutation() *UserProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserProfileUpdate builder.
func (_u *UserProfileUpdateOne) Where(ps ...predicate.UserProfile) *UserProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserProfileUpdateOne) Select(field string, fields ...string) *UserProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserProfile entity.
func (_u *UserProfileUpdateOne) Save(ctx context.Context) (*UserProfile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProfileUpdateOne) SaveX(ctx context.Context) *UserProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserProfileUpdateOne) sqlSave(ctx context.Context) (_node *UserProfile, err error) {
	_spec := sqlgraph.NewUpdateSpec(userprofile.Table, userprofile.Columns, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userprofile.FieldID)
		for _, f := range fields {
			if !userprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userprofile.FieldID {
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
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(userprofile.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(userprofile.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(userprofile.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(userprofile.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAge(); ok {
		_spec.AddField(userprofile.FieldAge, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeightKg(); ok {
		_spec.SetField(userprofile.FieldWeightKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightKg(); ok {
		_spec.AddField(userprofile.FieldWeightKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HeightCm(); ok {
		_spec.SetField(userprofile.FieldHeightCm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeightCm(); ok {
		_spec.AddField(userprofile.FieldHeightCm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Bmi(); ok {
		_spec.SetField(userprofile.FieldBmi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBmi(); ok {
		_spec.AddField(userprofile.FieldBmi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RestingBpm(); ok {
		_spec.SetField(userprofile.FieldRestingBpm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRestingBpm(); ok {
		_spec.AddField(userprofile.FieldRestingBpm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorkoutFrequency(); ok {
		_spec.SetField(userprofile.FieldWorkoutFrequency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWorkoutFrequency(); ok {
		_spec.AddField(userprofile.FieldWorkoutFrequency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProfilePic(); ok {
		_spec.SetField(userprofile.FieldProfilePic, field.TypeString, value)
	}
	_node = &UserProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
