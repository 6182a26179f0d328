package cmd

import (
	"fmt"
	"strconv"

	"github.com/fitlog/internal/cli"
	"github.com/fitlog/internal/model"
	"github.com/fitlog/internal/tracker"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <calories>",
	Short: "Log calories consumed",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return &model.ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is not a number", args[0])}
	}

	return withService(func(svc *tracker.Service) error {
		e, err := svc.AddCalories(amount)
		if err != nil {
			return err
		}

		totals, err := svc.TodayTotals()
		if err != nil {
			return err
		}
		goals, err := svc.Goals()
		if err != nil {
			return err
		}

		remaining := goals.CalorieGoal - totals.Calories
		if remaining < 0 {
			remaining = 0
		}

		fmt.Printf("  Logged %s (#%d)\n", cli.FormatQuantity(e.Type, e.Quantity), e.ID)
		if !flagQuiet {
			fmt.Printf("  Today: %s of %s, %s remaining\n",
				cli.FormatAmount(totals.Calories),
				cli.FormatQuantity(model.TypeCalories, goals.CalorieGoal),
				cli.FormatAmount(remaining),
			)
		}
		return nil
	})
}
