package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fitlog/internal/cli"
	"github.com/fitlog/internal/model"
	"github.com/fitlog/internal/tracker"

	"github.com/spf13/cobra"
)

var (
	flagEditAmount float64
	flagEditMood   string
	flagEditDate   string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing entry",
	Long:  "Edit an entry in place. Only the provided flags change; the rest of the entry is kept.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().Float64Var(&flagEditAmount, "amount", 0, "New quantity")
	editCmd.Flags().StringVar(&flagEditMood, "mood", "", "New mood (Happy|Neutral|Sad)")
	editCmd.Flags().StringVar(&flagEditDate, "date", "", "New date (YYYY-MM-DD or RFC3339)")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return &model.ValidationError{Field: "id", Reason: fmt.Sprintf("%q is not an entry id", args[0])}
	}
	if !cmd.Flags().Changed("amount") && !cmd.Flags().Changed("mood") && !cmd.Flags().Changed("date") {
		return &model.ValidationError{Field: "flags", Reason: "nothing to change; pass --amount, --mood, or --date"}
	}

	return withService(func(svc *tracker.Service) error {
		e, err := svc.Get(id)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("amount") {
			e.Quantity = flagEditAmount
		}
		if cmd.Flags().Changed("mood") {
			m, err := model.ParseMood(flagEditMood)
			if err != nil {
				return err
			}
			e.Mood = m
		}
		if cmd.Flags().Changed("date") {
			d, err := parseDateArg(flagEditDate)
			if err != nil {
				return err
			}
			e.Date = d
		}

		if err := svc.Edit(id, e); err != nil {
			return err
		}
		fmt.Printf("  Updated #%d: %s %s on %s\n", id, string(e.Type), cli.FormatEntryValue(e), cli.FormatDate(e.Date))
		return nil
	})
}

// parseDateArg accepts a bare day or a full timestamp.
func parseDateArg(s string) (time.Time, error) {
	if d, err := time.Parse(model.DayFormat, s); err == nil {
		return d, nil
	}
	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, &model.ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not a date", s)}
	}
	return d, nil
}
