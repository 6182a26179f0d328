package cmd

import (
	"fmt"

	"github.com/fitlog/internal/config"
	"github.com/fitlog/internal/tracker"
	"github.com/fitlog/internal/tui"
	"github.com/fitlog/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// An unopenable store degrades the dashboard instead of killing it:
	// defaults for goals, empty entries, and a persistent error banner.
	st, openErr := openStore()
	var svc *tracker.Service
	if openErr == nil {
		defer func() { _ = st.Close() }()
		svc = tracker.New(st)
	}

	app := tui.NewApp(svc, openErr)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
