package cmd

import (
	"fmt"
	"strconv"

	"github.com/fitlog/internal/model"
	"github.com/fitlog/internal/tracker"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id> [id...]",
	Short: "Delete entries by id",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(_ *cobra.Command, args []string) error {
	ids := make([]int64, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return &model.ValidationError{Field: "id", Reason: fmt.Sprintf("%q is not an entry id", a)}
		}
		ids = append(ids, id)
	}

	return withService(func(svc *tracker.Service) error {
		if err := svc.Delete(ids); err != nil {
			return err
		}
		fmt.Printf("  Deleted %d entr%s\n", len(ids), pluralY(len(ids)))
		return nil
	})
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
