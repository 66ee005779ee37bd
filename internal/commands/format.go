package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/roro-dev/roro/internal/id"
	"github.com/roro-dev/roro/internal/model"
	"github.com/roro-dev/roro/internal/query"
)

// formatAmount renders amount in the currency's own format. Codes unknown
// to go-money fall back to two decimals followed by the code.
func formatAmount(amount decimal.Decimal, code string) string {
	if money.GetCurrency(code) == nil {
		return amount.StringFixed(2) + " " + code
	}
	cur := *money.New(0, code).Currency()
	return cur.Formatter().Format(amount.Shift(int32(cur.Fraction)).Round(0).IntPart())
}

func formatRecord(r model.Record, code string) string {
	parts := []string{id.Format(r.ID), r.Date, string(r.Kind)}
	if r.Icon != "" {
		parts = append(parts, r.Icon)
	}
	parts = append(parts, r.Category, formatAmount(r.Amount, code))
	if r.Note != "" {
		parts = append(parts, "# "+r.Note)
	}
	return strings.Join(parts, "  ")
}

// parseMonth parses "YYYY-MM". An empty string means the month of now.
func parseMonth(s string, now time.Time) (year, month int, err error) {
	if s == "" {
		return now.Year(), int(now.Month()), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, want YYYY-MM", s)
	}
	return t.Year(), int(t.Month()), nil
}

// parseKind accepts "expense" or "income" in any case.
func parseKind(s string) (model.Kind, error) {
	for _, k := range model.Kinds {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid kind %q, want expense or income", s)
}

// parseDate validates a "YYYY-MM-DD" date. An empty string means today.
func parseDate(s string, now time.Time) (string, error) {
	if s == "" {
		return now.Format(query.DateFormat), nil
	}
	if _, err := time.Parse(query.DateFormat, s); err != nil {
		return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return s, nil
}
