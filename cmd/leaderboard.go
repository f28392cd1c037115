package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stepsync/companion/internal/leaderboard"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the local leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		entries, err := leaderboard.NewService(st.Profiles(), st.History()).Top(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("build leaderboard: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No players yet.")
			return nil
		}

		fmt.Printf("%4s  %-20s  %10s  %8s  %8s\n", "Rank", "Player", "Score", "Sessions", "Kcal")
		fmt.Println(strings.Repeat("─", 58))
		for _, e := range entries {
			fmt.Printf("%4d  %-20s  %10d  %8d  %8d\n",
				e.Rank, e.Username, e.TotalScore, e.Sessions, e.Calories)
		}
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().IntP("limit", "n", 10, "Number of entries to show")
}
