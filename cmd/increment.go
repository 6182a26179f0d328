package cmd

import (
	"fmt"

	"github.com/fitlog/internal/cli"
	"github.com/fitlog/internal/model"
	"github.com/fitlog/internal/tracker"

	"github.com/spf13/cobra"
)

var flagIncrementAmount float64

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Log one water increment",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runIncrement(model.TypeWater)
	},
}

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Log one exercise increment",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runIncrement(model.TypeExercise)
	},
}

func init() {
	for _, c := range []*cobra.Command{waterCmd, exerciseCmd} {
		c.Flags().Float64Var(&flagIncrementAmount, "amount", 0, "Override the configured increment")
		rootCmd.AddCommand(c)
	}
}

func runIncrement(typ model.EntryType) error {
	return withService(func(svc *tracker.Service) error {
		e, todayTotal, err := svc.Increment(typ, flagIncrementAmount)
		if err != nil {
			return err
		}

		fmt.Printf("  Logged %s %s (#%d)\n", cli.FormatQuantity(typ, e.Quantity), typ, e.ID)
		if !flagQuiet {
			fmt.Printf("  Today: %s\n", cli.FormatQuantity(typ, todayTotal))
		}
		return nil
	})
}
