package cmd

import (
	"fmt"

	"github.com/fitlog/internal/tracker"

	"github.com/spf13/cobra"
)

var flagClearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every logged entry",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&flagClearYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}

func runClear(_ *cobra.Command, _ []string) error {
	if !flagClearYes {
		fmt.Print("  Delete ALL entries? This cannot be undone. [y/N] ")
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("  Aborted.")
			return nil
		}
	}

	return withService(func(svc *tracker.Service) error {
		if err := svc.ClearAll(); err != nil {
			return err
		}
		fmt.Println("  All entries deleted. Goals and settings kept.")
		return nil
	})
}
