package cmd

import (
	"fmt"
	"strconv"

	"github.com/fitlog/internal/cli"
	"github.com/fitlog/internal/model"
	"github.com/fitlog/internal/store"
	"github.com/fitlog/internal/tracker"

	"github.com/spf13/cobra"
)

// goalNames maps the CLI-facing setting names onto storage keys.
var goalNames = map[string]string{
	"calories":           store.KeyCalorieGoal,
	"water":              store.KeyWaterGoal,
	"exercise":           store.KeyExerciseGoal,
	"water-increment":    store.KeyWaterIncrement,
	"exercise-increment": store.KeyExerciseIncrement,
}

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show daily goals and tap increments",
	Args:  cobra.NoArgs,
	RunE:  runGoals,
}

var goalsSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Change a goal or increment",
	Long:  "Change a goal or increment. Names: calories, water, exercise, water-increment, exercise-increment.",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalsSet,
}

func init() {
	goalsCmd.AddCommand(goalsSetCmd)
	rootCmd.AddCommand(goalsCmd)
}

func runGoals(_ *cobra.Command, _ []string) error {
	return withService(func(svc *tracker.Service) error {
		g, err := svc.Goals()
		if err != nil {
			return err
		}

		fmt.Println(cli.RenderTable(cli.Table{
			Title:   "Goals",
			Headers: []string{"Setting", "Value"},
			Rows: [][]string{
				{"Calories / day", cli.FormatQuantity(model.TypeCalories, g.CalorieGoal)},
				{"Water / day", cli.FormatQuantity(model.TypeWater, g.WaterGoal)},
				{"Exercise / day", cli.FormatQuantity(model.TypeExercise, g.ExerciseGoal)},
				{"---"},
				{"Water tap", cli.FormatQuantity(model.TypeWater, g.WaterIncrement)},
				{"Exercise tap", cli.FormatQuantity(model.TypeExercise, g.ExerciseIncrement)},
			},
		}))
		return nil
	})
}

func runGoalsSet(_ *cobra.Command, args []string) error {
	key, ok := goalNames[args[0]]
	if !ok {
		return &model.ValidationError{Field: "setting", Reason: fmt.Sprintf("unknown setting %q", args[0])}
	}
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return &model.ValidationError{Field: "value", Reason: fmt.Sprintf("%q is not a number", args[1])}
	}

	return withService(func(svc *tracker.Service) error {
		if err := svc.SetGoal(key, value); err != nil {
			return err
		}
		fmt.Printf("  Set %s to %s\n", args[0], cli.FormatAmount(value))
		return nil
	})
}
