package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stepsync/companion/internal/identity"
	"github.com/stepsync/companion/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View or edit your health profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := identity.EnvProvider{}.Current()
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p, err := st.Profiles().Get(cmd.Context(), user.UID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if p == nil {
			fmt.Println("No profile yet. Create one with: stepsync profile set")
			return nil
		}

		fmt.Printf("Username:          %s\n", p.Username)
		fmt.Printf("Email:             %s\n", p.Email)
		fmt.Printf("Age:               %d\n", p.Age)
		fmt.Printf("Weight:            %.1f kg\n", p.WeightKg)
		fmt.Printf("Height:            %.1f cm\n", p.HeightCm)
		fmt.Printf("BMI:               %.1f\n", p.BMI)
		fmt.Printf("Resting BPM:       %d\n", p.RestingBPM)
		fmt.Printf("Workouts per week: %d\n", p.WorkoutFrequency)
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the profile",
	Long: `Set profile fields. Only the flags you pass are changed; an unset
BMI is computed from weight and height by the recommendation engine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := identity.EnvProvider{}.Current()
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		p, err := st.Profiles().Get(ctx, user.UID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if p == nil {
			p = &store.UserProfile{UserID: user.UID, Email: user.Email}
		}

		applyProfileFlags(cmd, p)

		if err := st.Profiles().Save(ctx, p); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		fmt.Println("Profile saved.")
		return nil
	},
}

func applyProfileFlags(cmd *cobra.Command, p *store.UserProfile) {
	flags := cmd.Flags()
	if flags.Changed("username") {
		p.Username, _ = flags.GetString("username")
	}
	if flags.Changed("age") {
		p.Age, _ = flags.GetInt("age")
	}
	if flags.Changed("weight") {
		p.WeightKg, _ = flags.GetFloat64("weight")
	}
	if flags.Changed("height") {
		p.HeightCm, _ = flags.GetFloat64("height")
	}
	if flags.Changed("bmi") {
		p.BMI, _ = flags.GetFloat64("bmi")
	}
	if flags.Changed("resting-bpm") {
		p.RestingBPM, _ = flags.GetInt("resting-bpm")
	}
	if flags.Changed("workouts") {
		p.WorkoutFrequency, _ = flags.GetInt("workouts")
	}
}

func init() {
	profileSetCmd.Flags().String("username", "", "Display name")
	profileSetCmd.Flags().Int("age", 0, "Age in years")
	profileSetCmd.Flags().Float64("weight", 0, "Weight in kilograms")
	profileSetCmd.Flags().Float64("height", 0, "Height in centimeters")
	profileSetCmd.Flags().Float64("bmi", 0, "Body mass index")
	profileSetCmd.Flags().Int("resting-bpm", 0, "Resting heart rate")
	profileSetCmd.Flags().Int("workouts", 0, "Workouts per week")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
}
