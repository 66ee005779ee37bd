package commands

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roro-dev/roro/internal/model"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount string
		code   string
		want   string
	}{
		{"50", "USD", "$50.00"},
		{"1234.5", "USD", "$1,234.50"},
		{"-50", "USD", "-$50.00"},
		{"0.005", "USD", "$0.01"},
		{"12.5", "ZZZ", "12.50 ZZZ"},
	}
	for _, tt := range tests {
		got := formatAmount(decimal.RequireFromString(tt.amount), tt.code)
		assert.Equal(t, tt.want, got, "formatAmount(%s, %s)", tt.amount, tt.code)
	}

	assert.Contains(t, formatAmount(decimal.NewFromInt(50), "CNY"), "50.00")
}

func TestFormatRecord(t *testing.T) {
	r := model.Record{ID: 42, Kind: model.KindExpense, Amount: decimal.NewFromInt(8), Category: "其他", Date: "2024-05-03"}
	assert.Equal(t, "42  2024-05-03  Expense  其他  $8.00", formatRecord(r, "USD"))

	r.Icon = "📦"
	r.Note = "snacks"
	assert.Equal(t, "42  2024-05-03  Expense  📦  其他  $8.00  # snacks", formatRecord(r, "USD"))
}

func TestParseMonth(t *testing.T) {
	now := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	year, month, err := parseMonth("", now)
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 5, month)

	year, month, err = parseMonth("2023-12", now)
	require.NoError(t, err)
	assert.Equal(t, 2023, year)
	assert.Equal(t, 12, month)

	for _, bad := range []string{"2023-13", "2023/12", "12-2023", "2023-1x"} {
		_, _, err := parseMonth(bad, now)
		assert.Error(t, err, "input: %s", bad)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want model.Kind
	}{
		{"expense", model.KindExpense},
		{"Income", model.KindIncome},
		{"EXPENSE", model.KindExpense},
	}
	for _, tt := range tests {
		got, err := parseKind(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := parseKind("transfer")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	got, err := parseDate("", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-15", got)

	got, err = parseDate("2024-02-29", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", got)

	_, err = parseDate("2023-02-29", now)
	assert.Error(t, err)
}

func TestLookupIcon(t *testing.T) {
	cats := model.DefaultCategories()[model.KindExpense]
	assert.Equal(t, "🍜", lookupIcon(cats, "餐饮"))
	assert.Empty(t, lookupIcon(cats, "unknown"))
}
