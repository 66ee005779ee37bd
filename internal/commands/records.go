package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roro-dev/roro/internal/id"
	"github.com/roro-dev/roro/internal/ledger"
	"github.com/roro-dev/roro/internal/model"
)

func newAddCommand(a *app) *cobra.Command {
	var kind, icon, note, date string

	cmd := &cobra.Command{
		Use:   "add <amount> <category>",
		Short: "Record an expense or income",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := ledger.ParseAmount(args[0])
			if err != nil {
				return err
			}
			k, err := parseKind(kind)
			if err != nil {
				return err
			}
			day, err := parseDate(date, time.Now())
			if err != nil {
				return err
			}
			glyph := icon
			if glyph == "" {
				glyph = lookupIcon(a.ledger.Categories(k), args[1])
			}

			r, err := a.ledger.AddRecord(ledger.AddRecordParams{
				Kind:     k,
				Amount:   amount,
				Category: args[1],
				Icon:     glyph,
				Note:     note,
				Date:     day,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", formatRecord(r, a.currency()))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "expense", "expense or income")
	cmd.Flags().StringVar(&icon, "icon", "", "display icon (defaults to the category's icon)")
	cmd.Flags().StringVar(&note, "note", "", "free-text note")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")

	return cmd
}

// lookupIcon returns the icon of the named category, or "" if unknown.
func lookupIcon(categories []model.Category, name string) string {
	for _, c := range categories {
		if c.Name == name {
			return c.Icon
		}
	}
	return ""
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recordID, err := id.Parse(args[0])
			if err != nil {
				return err
			}
			n := a.ledger.DeleteRecord(recordID)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d record(s)\n", n)
			return nil
		},
	}
}

func newClearCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every record, keeping categories and budgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear all records without --yes")
			}
			a.ledger.ClearAllRecords()
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared all records")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm clearing all records")

	return cmd
}

func newListCommand(a *app) *cobra.Command {
	var date, month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records for a day or a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []model.Record
			if date != "" {
				day, err := parseDate(date, time.Now())
				if err != nil {
					return err
				}
				records = a.ledger.RecordsForDate(day)
			} else {
				year, m, err := parseMonth(month, time.Now())
				if err != nil {
					return err
				}
				records = a.ledger.RecordsForMonth(year, m)
			}
			printRecords(cmd, records, a.currency())
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "list a single day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&month, "month", "", "list a month (YYYY-MM, default current month)")
	cmd.MarkFlagsMutuallyExclusive("date", "month")

	return cmd
}

func newSearchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Find records by category or note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printRecords(cmd, a.ledger.Search(args[0]), a.currency())
			return nil
		},
	}
}

func printRecords(cmd *cobra.Command, records []model.Record, code string) {
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No records")
		return
	}
	for _, r := range records {
		fmt.Fprintln(out, formatRecord(r, code))
	}
}
