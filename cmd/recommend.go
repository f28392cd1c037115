package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stepsync/companion/internal/game"
	"github.com/stepsync/companion/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show the recommended mode and difficulty",
	Long: `Compute the recommended game pairing from your profile and history.

Difficulty comes from the prediction service when it is reachable and
from the local scoring rules otherwise. The mode is always picked
locally from your lifetime session count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		setup, err := buildController(cmd, st).Prepare(cmd.Context())
		if err != nil {
			return fmt.Errorf("compute recommendation: %w", err)
		}

		fmt.Println(setup.Insight.Message)
		fmt.Println()
		fmt.Printf("Recommended: %s on %s (%s)\n",
			setup.Rec.Mode.Label(), setup.Rec.Difficulty.Label(), setup.Rec.Source)
		fmt.Printf("Time budget: %d seconds\n",
			game.TimeBudgetSecs(setup.Rec.Mode, setup.Rec.Difficulty))
		fmt.Println()

		printOptions("Difficulty", setup.Difficulty)
		printOptions("Mode", setup.Mode)
		return nil
	},
}

func printOptions(title string, set *recommend.OptionSet) {
	fmt.Println(title)
	for _, opt := range set.Options {
		marker := "  "
		if opt.Key == set.SelectedKey {
			marker = "> "
		}
		suffix := ""
		if opt.Key == set.RecommendedKey {
			suffix = "  (recommended)"
		}
		fmt.Printf("  %s%-10s %s%s\n", marker, opt.Key, opt.Label, suffix)
	}
}
