package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stepsync/companion/internal/achievements"
	"github.com/stepsync/companion/internal/coach"
	"github.com/stepsync/companion/internal/gamezone"
	"github.com/stepsync/companion/internal/identity"
	"github.com/stepsync/companion/internal/prediction"
	"github.com/stepsync/companion/internal/recommend"
	"github.com/stepsync/companion/internal/session"
	"github.com/stepsync/companion/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "stepsync",
	Short: "StepSync fitness gaming companion",
	Long:  "StepSync — companion for step-powered gaming sessions: timed games, session history, streaks and personalized difficulty.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STEPSYNC_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STEPSYNC_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// coachService builds the coach from STEPSYNC_* env vars, falling back
// to discovery of standard API key vars. A coach is optional: without a
// configured provider the service still serves the built-in lines.
func coachService(cmd *cobra.Command) *coach.Service {
	cfg := coach.ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := coach.DiscoverConfig()
		if !ok {
			return coach.NewService(nil, 0)
		}
		cfg = discovered
	}
	provider, err := coach.NewProvider(cmd.Context(), cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Coach provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to built-in status lines.")
		return coach.NewService(nil, 0)
	}
	return coach.NewService(provider, cfg.Timeout)
}

// buildController wires the full game-zone dependency graph on top of
// an open store.
func buildController(cmd *cobra.Command, st *store.Store) *gamezone.Controller {
	predictor := prediction.NewHTTPClient(prediction.ConfigFromEnv())

	return gamezone.NewController(gamezone.Deps{
		Users:    identity.EnvProvider{},
		Profiles: st.Profiles(),
		History:  st.History(),
		Manager:  session.NewManager(st.Pending(), st.History()),
		Strategy: recommend.NewStrategy(predictor, recommend.Config{}),
		Coach:    coachService(cmd),
		Awards:   achievements.NewService(st.Achievements()),
	})
}
