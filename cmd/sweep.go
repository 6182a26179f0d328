package cmd

import (
	"fmt"

	"github.com/fitlog/internal/sweep"

	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete entries older than one year",
	Args:  cobra.NoArgs,
	RunE:  runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	n, err := sweep.New(st).SweepOnce()
	if err != nil {
		return err
	}
	fmt.Printf("  Swept %d expired entr%s\n", n, pluralY(n))
	return nil
}
