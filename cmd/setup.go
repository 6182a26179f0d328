package cmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/fitlog/internal/cli"
	"github.com/fitlog/internal/config"
	"github.com/fitlog/internal/store"
	"github.com/fitlog/internal/tracker"
	"github.com/fitlog/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Long:  "Configure goals, tap increments, the default summary window, and the theme. Safe to rerun anytime.",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	return withService(func(svc *tracker.Service) error {
		g, err := svc.Goals()
		if err != nil {
			return err
		}

		// Pre-fill with current values so rerunning edits in place.
		calories := cli.FormatAmount(g.CalorieGoal)
		water := cli.FormatAmount(g.WaterGoal)
		exercise := cli.FormatAmount(g.ExerciseGoal)
		waterInc := cli.FormatAmount(g.WaterIncrement)
		exerciseInc := cli.FormatAmount(g.ExerciseIncrement)
		window := cfg.General.DefaultWindow
		themeName := cfg.Appearance.Theme

		themeOpts := make([]huh.Option[string], 0, len(theme.All))
		for _, t := range theme.All {
			themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Daily calorie goal (kcal)").
					Value(&calories).
					Validate(validatePositiveNumber),
				huh.NewInput().
					Title("Daily water goal (ml)").
					Value(&water).
					Validate(validatePositiveNumber),
				huh.NewInput().
					Title("Daily exercise goal (min)").
					Value(&exercise).
					Validate(validatePositiveNumber),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Water per tap (ml)").
					Description("Amount logged by `fitlog water`").
					Value(&waterInc).
					Validate(validatePositiveNumber),
				huh.NewInput().
					Title("Exercise per tap (min)").
					Description("Amount logged by `fitlog exercise`").
					Value(&exerciseInc).
					Validate(validatePositiveNumber),
			),
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Default summary window").
					Options(
						huh.NewOption("Today", "today"),
						huh.NewOption("Current month", "month"),
						huh.NewOption("Past 3 months", "3mo"),
						huh.NewOption("Year to date", "ytd"),
					).
					Value(&window),
				huh.NewSelect[string]().
					Title("Color theme").
					Options(themeOpts...).
					Value(&themeName),
			),
		)

		if err := form.Run(); err != nil {
			return fmt.Errorf("setup aborted: %w", err)
		}

		settings := []struct {
			key   string
			value string
		}{
			{store.KeyCalorieGoal, calories},
			{store.KeyWaterGoal, water},
			{store.KeyExerciseGoal, exercise},
			{store.KeyWaterIncrement, waterInc},
			{store.KeyExerciseIncrement, exerciseInc},
		}
		for _, s := range settings {
			v, _ := strconv.ParseFloat(s.value, 64)
			if err := svc.SetGoal(s.key, v); err != nil {
				return err
			}
		}

		cfg.General.DefaultWindow = window
		cfg.Appearance.Theme = themeName
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		fmt.Println()
		fmt.Printf("  Saved to %s\n", config.ConfigPath())
		fmt.Println("  Run `fitlog setup` anytime to reconfigure.")
		fmt.Println()
		return nil
	})
}

func validatePositiveNumber(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}
