package store

import (
	"context"
	"fmt"

	"github.com/stepsync/companion/ent"
	"github.com/stepsync/companion/ent/userprofile"
)

type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, userID string) (*UserProfile, error) {
	row, err := r.client.UserProfile.Query().
		Where(userprofile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return profileFromRow(row), nil
}

func (r *profileRepo) Save(ctx context.Context, p *UserProfile) error {
	existing, err := r.client.UserProfile.Query().
		Where(userprofile.UserID(p.UserID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query profile: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetUsername(p.Username).
			SetEmail(p.Email).
			SetAge(p.Age).
			SetWeightKg(p.WeightKg).
			SetHeightCm(p.HeightCm).
			SetBmi(p.BMI).
			SetRestingBpm(p.RestingBPM).
			SetWorkoutFrequency(p.WorkoutFrequency).
			SetProfilePic(p.ProfilePic).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		return nil
	}

	builder := r.client.UserProfile.Create().
		SetUserID(p.UserID).
		SetEmail(p.Email).
		SetAge(p.Age).
		SetWeightKg(p.WeightKg).
		SetHeightCm(p.HeightCm).
		SetBmi(p.BMI).
		SetRestingBpm(p.RestingBPM).
		SetWorkoutFrequency(p.WorkoutFrequency)
	if p.Username != "" {
		builder = builder.SetUsername(p.Username)
	}
	if p.ProfilePic != "" {
		builder = builder.SetProfilePic(p.ProfilePic)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *profileRepo) All(ctx context.Context) ([]*UserProfile, error) {
	rows, err := r.client.UserProfile.Query().
		Order(ent.Asc(userprofile.FieldUsername)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	out := make([]*UserProfile, len(rows))
	for i, row := range rows {
		out[i] = profileFromRow(row)
	}
	return out, nil
}

func profileFromRow(row *ent.UserProfile) *UserProfile {
	return &UserProfile{
		UserID:           row.UserID,
		Username:         row.Username,
		Email:            row.Email,
		Age:              row.Age,
		WeightKg:         row.WeightKg,
		HeightCm:         row.HeightCm,
		BMI:              row.Bmi,
		RestingBPM:       row.RestingBpm,
		WorkoutFrequency: row.WorkoutFrequency,
		ProfilePic:       row.ProfilePic,
	}
}
