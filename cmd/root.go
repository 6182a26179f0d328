package cmd

import (
	"fmt"
	"os"

	"github.com/fitlog/internal/cli"
	"github.com/fitlog/internal/config"
	"github.com/fitlog/internal/store"
	"github.com/fitlog/internal/tracker"

	"github.com/spf13/cobra"
)

var (
	flagDBPath string
	flagQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:   "fitlog",
	Short: "Personal daily health tracker",
	Long:  "Track calories, water, exercise, and mood in a local database.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Database path (default "+config.DefaultDBPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress non-essential output")
}

// openStore opens the database at the flag, config, or default path.
// An open failure means storage is unavailable; commands surface it
// rather than proceeding with undefined totals.
func openStore() (*store.Store, error) {
	path := flagDBPath
	if path == "" {
		cfg, err := config.Load()
		if err != nil && !flagQuiet {
			fmt.Fprintln(os.Stderr, cli.RenderWarning(fmt.Sprintf("config unreadable, using defaults: %v", err)))
		}
		path = cfg.ResolveDBPath()
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return st, nil
}

// withService runs fn with a service over a freshly opened store,
// closing it afterwards. Shared by every data command.
func withService(fn func(*tracker.Service) error) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	return fn(tracker.New(st))
}
