package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/stepsync/companion/internal/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a gaming session",
	Long: `Start a timed gaming session and run it to completion.

Mode and difficulty default to the recommendation computed from your
profile and session history. Ctrl+C stops the timer without recording
the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		controller := buildController(cmd, st)

		setup, err := controller.Prepare(cmd.Context())
		if err != nil {
			return fmt.Errorf("prepare session: %w", err)
		}

		fmt.Printf("Streak %d day(s) | today %d | total %d\n",
			setup.Stats.Streak, setup.Stats.TodayCount, setup.Stats.TotalCount)
		fmt.Println(setup.Insight.Message)

		mode, difficulty, err := resolvePairing(cmd, setup.Rec.Mode, setup.Rec.Difficulty)
		if err != nil {
			return err
		}
		fmt.Printf("Playing %s on %s (%s pick, %d seconds)\n",
			mode.Label(), difficulty.Label(), setup.Rec.Source, game.TimeBudgetSecs(mode, difficulty))

		// Ctrl+C is a manual stop: the timer halts and nothing is recorded.
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		outcome, err := controller.Play(ctx, mode, difficulty, func(remaining, calories int) {
			fmt.Printf("\r%3d:%02d remaining | %d kcal ", remaining/60, remaining%60, calories)
		})
		fmt.Println()
		if err != nil {
			return fmt.Errorf("play session: %w", err)
		}

		if !outcome.Expired {
			fmt.Println("Session stopped. Nothing was recorded.")
			return nil
		}

		fmt.Printf("Time's up! Score %d | %d kcal | %d min\n",
			outcome.Result.Score, outcome.Result.Calories, outcome.Result.DurationMins)
		for _, a := range outcome.Awards {
			fmt.Println("Achievement unlocked:", a.Reason)
		}
		return nil
	},
}

func init() {
	playCmd.Flags().StringP("mode", "m", "", "Game mode: btc, memory or mirror (default: recommended)")
	playCmd.Flags().StringP("difficulty", "d", "", "Difficulty: easy, medium or hard (default: recommended)")
}

// resolvePairing applies the --mode and --difficulty flags over the
// recommended pairing.
func resolvePairing(cmd *cobra.Command, mode game.Mode, difficulty game.Difficulty) (game.Mode, game.Difficulty, error) {
	if v, _ := cmd.Flags().GetString("mode"); v != "" {
		m, err := game.ParseMode(v)
		if err != nil {
			return "", "", err
		}
		mode = m
	}
	if v, _ := cmd.Flags().GetString("difficulty"); v != "" {
		d, err := game.ParseDifficulty(v)
		if err != nil {
			return "", "", err
		}
		difficulty = d
	}
	return mode, difficulty, nil
}
