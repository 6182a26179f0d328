package cmd

import (
	"fmt"
	"strconv"

	"github.com/fitlog/internal/cli"
	"github.com/fitlog/internal/model"
	"github.com/fitlog/internal/tracker"

	"github.com/spf13/cobra"
)

var flagLogType string

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "List logged entries",
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

func init() {
	logCmd.Flags().StringVarP(&flagLogType, "type", "t", "", "Filter by type (calories|water|exercise|mood)")
	rootCmd.AddCommand(logCmd)
}

func runLog(_ *cobra.Command, _ []string) error {
	var typ model.EntryType
	if flagLogType != "" {
		t, err := model.ParseEntryType(flagLogType)
		if err != nil {
			return err
		}
		typ = t
	}

	return withService(func(svc *tracker.Service) error {
		entries, err := svc.Entries(typ)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("  No entries logged yet.")
			return nil
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{
				strconv.FormatInt(e.ID, 10),
				cli.FormatDateTime(e.Date),
				string(e.Type),
				cli.FormatEntryValue(e),
			})
		}

		fmt.Println(cli.RenderTable(cli.Table{
			Title:   "Entries",
			Headers: []string{"ID", "Date", "Type", "Value"},
			Rows:    rows,
		}))
		if !flagQuiet {
			fmt.Printf("  %s entr%s\n", cli.FormatNumber(int64(len(entries))), pluralY(len(entries)))
		}
		return nil
	})
}
