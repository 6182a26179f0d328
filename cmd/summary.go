package cmd

import (
	"fmt"

	"github.com/fitlog/internal/cli"
	"github.com/fitlog/internal/config"
	"github.com/fitlog/internal/metrics"
	"github.com/fitlog/internal/model"
	"github.com/fitlog/internal/tracker"

	"github.com/spf13/cobra"
)

var flagSummaryWindow string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show totals and goal progress for a time window",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVarP(&flagSummaryWindow, "window", "w", "", "Window: today, month, 3mo, or ytd")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	name := flagSummaryWindow
	if name == "" {
		cfg, _ := config.Load()
		name = cfg.General.DefaultWindow
	}
	w, err := metrics.ParseWindow(name)
	if err != nil {
		return err
	}

	return withService(func(svc *tracker.Service) error {
		if _, err := svc.ResetDaily(nil); err != nil {
			return err
		}
		s, err := svc.Summary(w)
		if err != nil {
			return err
		}
		printSummary(s)
		return nil
	})
}

func printSummary(s metrics.Summary) {
	fmt.Println(cli.RenderTitle("fitlog — " + s.Window.Title()))
	fmt.Println()

	fmt.Println(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Total", "Goal"},
		Rows: [][]string{
			{"Calories", cli.FormatQuantity(model.TypeCalories, s.Calories), summaryGoal(s.Window, model.TypeCalories, s.Goals.CalorieGoal)},
			{"Water", cli.FormatQuantity(model.TypeWater, s.Water), summaryGoal(s.Window, model.TypeWater, s.Goals.WaterGoal)},
			{"Exercise", cli.FormatQuantity(model.TypeExercise, s.Exercise), summaryGoal(s.Window, model.TypeExercise, s.Goals.ExerciseGoal)},
		},
	}))

	fmt.Println(cli.RenderPercentBar("Calories", s.CaloriesPct, 24))
	fmt.Println(cli.RenderPercentBar("Water", s.WaterPct, 24))
	fmt.Println(cli.RenderPercentBar("Exercise", s.ExercisePct, 24))
	fmt.Println()

	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Mood",
		Headers: []string{"Mood", "Count", "Share"},
		Rows: [][]string{
			{"Happy", fmt.Sprintf("%d", s.Moods.Happy), cli.FormatPercent(s.MoodPct.Happy)},
			{"Neutral", fmt.Sprintf("%d", s.Moods.Neutral), cli.FormatPercent(s.MoodPct.Neutral)},
			{"Sad", fmt.Sprintf("%d", s.Moods.Sad), cli.FormatPercent(s.MoodPct.Sad)},
			{"---"},
			{"Unreported", "", cli.FormatPercent(s.MoodPct.Unreported)},
		},
	}))
}

// summaryGoal shows the per-day goal for single-period windows and the
// month-scaled goal for the trailing windows.
func summaryGoal(w metrics.Window, t model.EntryType, goal float64) string {
	if months := w.Months(); months > 0 {
		return cli.FormatQuantity(t, goal*float64(months))
	}
	return cli.FormatQuantity(t, goal)
}
