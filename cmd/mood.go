package cmd

import (
	"fmt"

	"github.com/fitlog/internal/model"
	"github.com/fitlog/internal/tracker"

	"github.com/spf13/cobra"
)

var moodCmd = &cobra.Command{
	Use:   "mood <Happy|Neutral|Sad>",
	Short: "Log a mood check-in",
	Args:  cobra.ExactArgs(1),
	RunE:  runMood,
}

func init() {
	rootCmd.AddCommand(moodCmd)
}

func runMood(_ *cobra.Command, args []string) error {
	m, err := model.ParseMood(args[0])
	if err != nil {
		return err
	}

	return withService(func(svc *tracker.Service) error {
		e, err := svc.LogMood(m)
		if err != nil {
			return err
		}
		fmt.Printf("  Logged mood %s (#%d)\n", e.Mood, e.ID)
		return nil
	})
}
