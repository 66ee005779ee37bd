package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roro-dev/roro/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rec(id int64, kind model.Kind, amount, category, date string) model.Record {
	return model.Record{
		ID:        id,
		Kind:      kind,
		Amount:    dec(amount),
		Category:  category,
		Date:      date,
		CreatedAt: date + "T12:00:00",
	}
}

func ids(records []model.Record) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-05", MonthKey(2024, 5))
	assert.Equal(t, "2024-12", MonthKey(2024, 12))
	assert.Equal(t, "0999-01", MonthKey(999, 1))
}

func TestForDate(t *testing.T) {
	records := []model.Record{
		{ID: 1, Date: "2024-05-01", CreatedAt: "2024-05-01T08:00:00"},
		{ID: 2, Date: "2024-05-02", CreatedAt: "2024-05-02T08:00:00"},
		{ID: 3, Date: "2024-05-01", CreatedAt: "2024-05-01T20:00:00"},
		{ID: 4, Date: "2024-05-01", CreatedAt: "2024-05-01T12:30:00"},
	}

	assert.Equal(t, []int64{3, 4, 1}, ids(ForDate(records, "2024-05-01")))
	assert.Empty(t, ForDate(records, "2024-05-03"))
	assert.Empty(t, ForDate(records, "2024-05"), "date match is exact")
}

func TestForMonth(t *testing.T) {
	records := []model.Record{
		rec(1, model.KindExpense, "1", "a", "2024-05-03"),
		rec(2, model.KindExpense, "1", "a", "2024-06-01"),
		rec(3, model.KindIncome, "1", "a", "2024-05-20"),
		rec(4, model.KindExpense, "1", "a", "2024-05-03"),
		rec(5, model.KindExpense, "1", "a", "2023-05-10"),
	}

	got := ForMonth(records, 2024, 5)
	assert.Equal(t, []int64{3, 1, 4}, ids(got), "date descending, stable within a day")
	assert.Empty(t, ForMonth(records, 2024, 7))
}

func TestMonthlySummary(t *testing.T) {
	records := []model.Record{
		rec(1, model.KindExpense, "50.0", "餐饮", "2024-05-01"),
		rec(2, model.KindIncome, "5000", "工资", "2024-05-10"),
		rec(3, model.KindExpense, "12.35", "交通", "2024-05-11"),
		rec(4, model.KindExpense, "99", "购物", "2024-04-30"),
	}

	sum := MonthlySummary(records, 2024, 5)
	assert.True(t, sum.Income.Equal(dec("5000")), "income %s", sum.Income)
	assert.True(t, sum.Expense.Equal(dec("62.35")), "expense %s", sum.Expense)
	assert.True(t, sum.Balance.Equal(dec("4937.65")), "balance %s", sum.Balance)
	assert.Equal(t, 3, sum.Count)
}

func TestMonthlySummary_Empty(t *testing.T) {
	sum := MonthlySummary(nil, 2024, 5)
	assert.True(t, sum.Income.IsZero())
	assert.True(t, sum.Expense.IsZero())
	assert.True(t, sum.Balance.IsZero())
	assert.Equal(t, 0, sum.Count)
}

func TestMonthlySummary_Additive(t *testing.T) {
	records := []model.Record{
		rec(1, model.KindExpense, "0.1", "a", "2024-02-01"),
		rec(2, model.KindExpense, "0.2", "b", "2024-02-29"),
		rec(3, model.KindIncome, "0.3", "c", "2024-02-15"),
		rec(4, model.KindIncome, "7", "c", "2024-03-01"),
	}
	for month := 1; month <= 3; month++ {
		sum := MonthlySummary(records, 2024, month)
		assert.True(t, sum.Balance.Equal(sum.Income.Sub(sum.Expense)))
		assert.Equal(t, len(ForMonth(records, 2024, month)), sum.Count)
	}
	assert.True(t, MonthlySummary(records, 2024, 2).Balance.IsZero(), "decimal sums are exact")
}

func TestCategoryStats_TieKeepsFirstSeen(t *testing.T) {
	records := []model.Record{
		rec(1, model.KindExpense, "30", "A", "2024-05-01"),
		rec(2, model.KindExpense, "50", "B", "2024-05-02"),
		rec(3, model.KindExpense, "20", "A", "2024-05-03"),
	}

	stats := CategoryStats(records, 2024, 5, model.KindExpense)
	require.Len(t, stats, 2)
	assert.Equal(t, "A", stats[0].Category)
	assert.True(t, stats[0].Amount.Equal(dec("50")))
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, "B", stats[1].Category)
	assert.True(t, stats[1].Amount.Equal(dec("50")))
	assert.Equal(t, 1, stats[1].Count)
}

func TestCategoryStats(t *testing.T) {
	records := []model.Record{
		rec(1, model.KindExpense, "10", "餐饮", "2024-05-01"),
		rec(2, model.KindExpense, "80", "购物", "2024-05-02"),
		rec(3, model.KindIncome, "500", "工资", "2024-05-02"),
		rec(4, model.KindExpense, "15.5", "餐饮", "2024-05-03"),
		rec(5, model.KindExpense, "40", "交通", "2024-05-04"),
		rec(6, model.KindExpense, "1000", "居住", "2024-06-01"),
	}
	records[0].Icon = "🍜"
	records[3].Icon = "🥢"

	stats := CategoryStats(records, 2024, 5, model.KindExpense)
	require.Len(t, stats, 3)

	names := []string{stats[0].Category, stats[1].Category, stats[2].Category}
	assert.Equal(t, []string{"购物", "交通", "餐饮"}, names)
	assert.True(t, stats[2].Amount.Equal(dec("25.5")))
	assert.Equal(t, 2, stats[2].Count)
	assert.Equal(t, "🍜", stats[2].Icon, "icon comes from the first record seen")

	income := CategoryStats(records, 2024, 5, model.KindIncome)
	require.Len(t, income, 1)
	assert.Equal(t, "工资", income[0].Category)

	assert.Empty(t, CategoryStats(records, 2024, 7, model.KindExpense))
}

func TestWeeklyComparison(t *testing.T) {
	// 2024-05-15 is a Wednesday; this week starts 2024-05-13.
	now := time.Date(2024, 5, 15, 18, 30, 0, 0, time.Local)
	records := []model.Record{
		rec(1, model.KindExpense, "10", "a", "2024-05-13"),
		rec(2, model.KindIncome, "100", "b", "2024-05-15"),
		rec(3, model.KindExpense, "999", "a", "2024-05-16"),
		rec(4, model.KindExpense, "20", "a", "2024-05-12"),
		rec(5, model.KindExpense, "5", "a", "2024-05-06"),
		rec(6, model.KindIncome, "30", "b", "2024-05-08"),
		rec(7, model.KindExpense, "7", "a", "2024-05-05"),
		rec(8, model.KindExpense, "1", "a", "bad-date"),
		rec(9, model.KindExpense, "1", "a", "2024-02-30"),
	}

	got := WeeklyComparison(records, now)
	assert.True(t, got.ThisWeek.Expense.Equal(dec("10")), "this week expense %s", got.ThisWeek.Expense)
	assert.True(t, got.ThisWeek.Income.Equal(dec("100")), "this week income %s", got.ThisWeek.Income)
	assert.True(t, got.LastWeek.Expense.Equal(dec("25")), "last week expense %s", got.LastWeek.Expense)
	assert.True(t, got.LastWeek.Income.Equal(dec("30")), "last week income %s", got.LastWeek.Income)
}

func TestWeeklyComparison_WeekBoundaries(t *testing.T) {
	records := []model.Record{
		rec(1, model.KindExpense, "1", "a", "2024-05-13"),
		rec(2, model.KindExpense, "2", "a", "2024-05-19"),
		rec(3, model.KindExpense, "4", "a", "2024-05-12"),
	}

	tests := []struct {
		name     string
		now      time.Time
		thisWeek string
		lastWeek string
	}{
		{"monday", time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC), "1", "4"},
		{"sunday", time.Date(2024, 5, 19, 23, 59, 0, 0, time.UTC), "3", "4"},
		{"next monday", time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC), "0", "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeeklyComparison(records, tt.now)
			assert.True(t, got.ThisWeek.Expense.Equal(dec(tt.thisWeek)), "this week %s", got.ThisWeek.Expense)
			assert.True(t, got.LastWeek.Expense.Equal(dec(tt.lastWeek)), "last week %s", got.LastWeek.Expense)
		})
	}
}

func TestWeeklyComparison_Empty(t *testing.T) {
	got := WeeklyComparison(nil, time.Now())
	assert.True(t, got.ThisWeek.Expense.IsZero())
	assert.True(t, got.ThisWeek.Income.IsZero())
	assert.True(t, got.LastWeek.Expense.IsZero())
	assert.True(t, got.LastWeek.Income.IsZero())
}

func TestMonthlyBudget(t *testing.T) {
	doc := model.DefaultDocument()
	assert.True(t, MonthlyBudget(doc, 2024, 6).IsZero())

	doc.Settings.MonthlyBudget = dec("1000")
	assert.True(t, MonthlyBudget(doc, 2024, 6).Equal(dec("1000")))

	doc.Budgets["2024-06"] = dec("1500")
	assert.True(t, MonthlyBudget(doc, 2024, 6).Equal(dec("1500")))
	assert.True(t, MonthlyBudget(doc, 2024, 7).Equal(dec("1000")))
}

func TestSearch(t *testing.T) {
	records := []model.Record{
		rec(1, model.KindExpense, "30", "餐饮", "2024-05-01"),
		rec(2, model.KindExpense, "12", "交通", "2024-05-02"),
		rec(3, model.KindIncome, "100", "Bonus", "2024-05-03"),
		rec(4, model.KindExpense, "8", "其他", "2024-05-04"),
	}
	records[1].Note = "Taxi to airport"
	records[3].Note = "买菜 at market"

	tests := []struct {
		keyword string
		want    []int64
	}{
		{"", nil},
		{"餐", []int64{1}},
		{"TAXI", []int64{2}},
		{"bonus", []int64{3}},
		{"market", []int64{4}},
		{"a", []int64{2, 4}},
		{"nothing", nil},
	}
	for _, tt := range tests {
		got := Search(records, tt.keyword)
		if tt.want == nil {
			assert.Empty(t, got, "Search(%q)", tt.keyword)
			continue
		}
		assert.Equal(t, tt.want, ids(got), "Search(%q)", tt.keyword)
	}
}
