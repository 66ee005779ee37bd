// Package query derives summaries and listings from ledger records. Every
// function recomputes from the full record list; nothing is cached.
package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roro-dev/roro/internal/model"
)

// DateFormat is the layout of Record.Date.
const DateFormat = "2006-01-02"

// MonthKey returns the "YYYY-MM" key used for month prefixes and budgets.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// ForDate returns the records on date, most recently created first.
func ForDate(records []model.Record, date string) []model.Record {
	var out []model.Record
	for _, r := range records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b model.Record) int {
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})
	return out
}

// ForMonth returns the records whose date falls in year/month, latest date first.
func ForMonth(records []model.Record, year, month int) []model.Record {
	out := inMonth(records, year, month)
	slices.SortStableFunc(out, func(a, b model.Record) int {
		return cmp.Compare(b.Date, a.Date)
	})
	return out
}

func inMonth(records []model.Record, year, month int) []model.Record {
	prefix := MonthKey(year, month)
	var out []model.Record
	for _, r := range records {
		if strings.HasPrefix(r.Date, prefix) {
			out = append(out, r)
		}
	}
	return out
}

// MonthlySummary totals income and expense for year/month.
func MonthlySummary(records []model.Record, year, month int) model.Summary {
	sum := model.Summary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, r := range inMonth(records, year, month) {
		switch r.Kind {
		case model.KindIncome:
			sum.Income = sum.Income.Add(r.Amount)
		case model.KindExpense:
			sum.Expense = sum.Expense.Add(r.Amount)
		}
		sum.Count++
	}
	sum.Balance = sum.Income.Sub(sum.Expense)
	return sum
}

// CategoryStats groups the month's records of kind by category, largest
// total first. Equal totals keep the order in which categories were first seen.
func CategoryStats(records []model.Record, year, month int, kind model.Kind) []model.CategoryStat {
	var stats []model.CategoryStat
	index := make(map[string]int)
	for _, r := range inMonth(records, year, month) {
		if r.Kind != kind {
			continue
		}
		i, ok := index[r.Category]
		if !ok {
			i = len(stats)
			index[r.Category] = i
			stats = append(stats, model.CategoryStat{Category: r.Category, Amount: decimal.Zero, Icon: r.Icon})
		}
		stats[i].Amount = stats[i].Amount.Add(r.Amount)
		stats[i].Count++
	}
	slices.SortStableFunc(stats, func(a, b model.CategoryStat) int {
		return b.Amount.Cmp(a.Amount)
	})
	return stats
}

// WeeklyComparison sums this week (Monday through today) against the seven
// days before this week's Monday, relative to now. Records with unparseable
// dates are skipped.
func WeeklyComparison(records []model.Record, now time.Time) model.WeeklyComparison {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monday := today.AddDate(0, 0, -daysSinceMonday(today.Weekday()))
	lastMonday := monday.AddDate(0, 0, -7)

	out := model.WeeklyComparison{
		ThisWeek: model.WeekTotals{Expense: decimal.Zero, Income: decimal.Zero},
		LastWeek: model.WeekTotals{Expense: decimal.Zero, Income: decimal.Zero},
	}
	for _, r := range records {
		d, err := time.Parse(DateFormat, r.Date)
		if err != nil {
			continue
		}
		var week *model.WeekTotals
		switch {
		case !d.Before(monday) && !d.After(today):
			week = &out.ThisWeek
		case !d.Before(lastMonday) && d.Before(monday):
			week = &out.LastWeek
		default:
			continue
		}
		switch r.Kind {
		case model.KindExpense:
			week.Expense = week.Expense.Add(r.Amount)
		case model.KindIncome:
			week.Income = week.Income.Add(r.Amount)
		}
	}
	return out
}

// daysSinceMonday maps Monday to 0 and Sunday to 6.
func daysSinceMonday(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// MonthlyBudget returns the budget for year/month, falling back to the
// global monthly budget setting.
func MonthlyBudget(doc *model.Document, year, month int) decimal.Decimal {
	if b, ok := doc.Budgets[MonthKey(year, month)]; ok {
		return b
	}
	return doc.Settings.MonthlyBudget
}

// Search matches keyword case-insensitively against category and note.
// An empty keyword matches nothing.
func Search(records []model.Record, keyword string) []model.Record {
	if keyword == "" {
		return nil
	}
	kw := strings.ToLower(keyword)
	var out []model.Record
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Category), kw) || strings.Contains(strings.ToLower(r.Note), kw) {
			out = append(out, r)
		}
	}
	return out
}
