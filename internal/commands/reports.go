package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roro-dev/roro/internal/ledger"
	"github.com/roro-dev/roro/internal/model"
	"github.com/roro-dev/roro/internal/query"
)

func newSummaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary [YYYY-MM]",
		Short: "Show income, expense and budget for a month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseMonth(optionalArg(args), time.Now())
			if err != nil {
				return err
			}
			code := a.currency()
			sum := a.ledger.MonthlySummary(year, month)
			budget := a.ledger.MonthlyBudget(year, month)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Month:   %s\n", query.MonthKey(year, month))
			fmt.Fprintf(out, "Income:  %s\n", formatAmount(sum.Income, code))
			fmt.Fprintf(out, "Expense: %s\n", formatAmount(sum.Expense, code))
			fmt.Fprintf(out, "Balance: %s\n", formatAmount(sum.Balance, code))
			fmt.Fprintf(out, "Records: %d\n", sum.Count)
			if budget.IsPositive() {
				fmt.Fprintf(out, "Budget:  %s (remaining %s)\n", formatAmount(budget, code), formatAmount(budget.Sub(sum.Expense), code))
			}
			return nil
		},
	}
}

func newStatsCommand(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "stats [YYYY-MM]",
		Short: "Break down a month by category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseMonth(optionalArg(args), time.Now())
			if err != nil {
				return err
			}
			k, err := parseKind(kind)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			stats := a.ledger.CategoryStats(year, month, k)
			if len(stats) == 0 {
				fmt.Fprintln(out, "No records")
				return nil
			}
			code := a.currency()
			for _, s := range stats {
				fmt.Fprintf(out, "%s %s  %s  (%d)\n", s.Icon, s.Category, formatAmount(s.Amount, code), s.Count)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "expense", "expense or income")

	return cmd
}

func newWeekCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Compare this week with last week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp := a.ledger.WeeklyComparison()
			code := a.currency()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "This week: expense %s, income %s\n", formatAmount(cmp.ThisWeek.Expense, code), formatAmount(cmp.ThisWeek.Income, code))
			fmt.Fprintf(out, "Last week: expense %s, income %s\n", formatAmount(cmp.LastWeek.Expense, code), formatAmount(cmp.LastWeek.Income, code))
			return nil
		},
	}
}

func newBudgetCommand(a *app) *cobra.Command {
	budgetCmd := &cobra.Command{
		Use:   "budget",
		Short: "Show or set monthly budgets",
	}

	budgetCmd.AddCommand(&cobra.Command{
		Use:   "set <YYYY-MM> <amount>",
		Short: "Set a month's budget and make it the default",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseMonth(args[0], time.Now())
			if err != nil {
				return err
			}
			amount, err := ledger.ParseAmount(args[1])
			if err != nil {
				return err
			}
			if err := a.ledger.SetMonthlyBudget(year, month, amount); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Budget for %s set to %s\n", query.MonthKey(year, month), formatAmount(amount, a.currency()))
			return nil
		},
	})

	budgetCmd.AddCommand(&cobra.Command{
		Use:   "get [YYYY-MM]",
		Short: "Show the budget for a month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseMonth(optionalArg(args), time.Now())
			if err != nil {
				return err
			}
			budget := a.ledger.MonthlyBudget(year, month)
			fmt.Fprintf(cmd.OutOrStdout(), "Budget for %s: %s\n", query.MonthKey(year, month), formatAmount(budget, a.currency()))
			return nil
		},
	})

	return budgetCmd
}

func newCategoriesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, k := range model.Kinds {
				fmt.Fprintf(out, "%s:\n", k)
				for _, c := range a.ledger.Categories(k) {
					fmt.Fprintf(out, "  %s %s\n", c.Icon, c.Name)
				}
			}
			return nil
		},
	}
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
