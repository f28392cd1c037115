package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/stepsync/companion/internal/achievements"
	"github.com/stepsync/companion/internal/history"
	"github.com/stepsync/companion/internal/identity"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show session statistics and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

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
		recs, err := st.History().Sessions(ctx, user.UID)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		records := make([]history.Record, len(recs))
		for i, r := range recs {
			records[i] = history.Record{Timestamp: r.Timestamp}
		}
		stats := history.Compute(records, time.Now())

		fmt.Printf("Streak:   %d day(s)\n", stats.Streak)
		fmt.Printf("Today:    %d session(s)\n", stats.TodayCount)
		fmt.Printf("Lifetime: %d session(s)\n", stats.TotalCount)

		if len(recs) > 0 {
			fmt.Println()
			fmt.Printf("%-19s  %-14s  %-8s  %8s  %6s  %5s\n",
				"Completed", "Mode", "Level", "Score", "Kcal", "Mins")
			fmt.Println(strings.Repeat("─", 72))
			for i, r := range recs {
				if i == limit {
					break
				}
				fmt.Printf("%-19s  %-14s  %-8s  %8d  %6d  %5d\n",
					time.Unix(r.Timestamp, 0).Local().Format("2006-01-02 15:04:05"),
					r.Mode.Label(), r.Difficulty.Label(), r.Score, r.Calories, r.DurationMins)
			}
		}

		earned, err := achievements.NewService(st.Achievements()).Earned(ctx, user.UID)
		if err != nil {
			return fmt.Errorf("load achievements: %w", err)
		}
		if len(earned) > 0 {
			fmt.Println()
			fmt.Println("Achievements")
			fmt.Println(strings.Repeat("─", 72))
			for _, a := range earned {
				fmt.Printf("%-19s  %s\n",
					time.Unix(a.AwardedAt, 0).Local().Format("2006-01-02 15:04:05"), a.Reason)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent sessions to show")
}
