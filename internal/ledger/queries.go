package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/roro-dev/roro/internal/model"
	"github.com/roro-dev/roro/internal/query"
)

// RecordsForDate returns the records on date ("YYYY-MM-DD"), newest first.
func (l *Ledger) RecordsForDate(date string) []model.Record {
	return query.ForDate(l.doc.Records, date)
}

// RecordsForMonth returns the month's records, latest date first.
func (l *Ledger) RecordsForMonth(year, month int) []model.Record {
	return query.ForMonth(l.doc.Records, year, month)
}

func (l *Ledger) MonthlySummary(year, month int) model.Summary {
	return query.MonthlySummary(l.doc.Records, year, month)
}

func (l *Ledger) CategoryStats(year, month int, kind model.Kind) []model.CategoryStat {
	return query.CategoryStats(l.doc.Records, year, month, kind)
}

// WeeklyComparison compares this week so far with last week, evaluated at
// the current time.
func (l *Ledger) WeeklyComparison() model.WeeklyComparison {
	return query.WeeklyComparison(l.doc.Records, l.now())
}

func (l *Ledger) MonthlyBudget(year, month int) decimal.Decimal {
	return query.MonthlyBudget(l.doc, year, month)
}

func (l *Ledger) Search(keyword string) []model.Record {
	return query.Search(l.doc.Records, keyword)
}
