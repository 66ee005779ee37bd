package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind classifies a record as money going out or coming in.
type Kind string

const (
	KindExpense Kind = "Expense"
	KindIncome  Kind = "Income"
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindExpense, KindIncome}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindExpense || k == KindIncome
}

// Record is one income or expense event.
type Record struct {
	ID        int64           `json:"id"`
	Kind      Kind            `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Icon      string          `json:"icon"`
	Note      string          `json:"note"`
	Date      string          `json:"date"`       // "YYYY-MM-DD"
	CreatedAt string          `json:"created_at"` // ISO-8601, orders records within a day
}

// UnmarshalJSON accepts any JSON number as the id. Fractional ids are
// truncated so that one odd record does not make the whole file unreadable.
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	aux := struct {
		*plain
		ID json.Number `json:"id"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.ID = 0
	if aux.ID != "" {
		v, err := decimal.NewFromString(aux.ID.String())
		if err != nil {
			return fmt.Errorf("parsing record id %q: %w", aux.ID, err)
		}
		r.ID = v.IntPart()
	}
	return nil
}

// Summary totals one month of records.
type Summary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
	Count   int             `json:"count"`
}

// CategoryStat aggregates one category's records within a month.
type CategoryStat struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int             `json:"count"`
	Icon     string          `json:"icon"`
}

// WeekTotals holds the per-kind sums for one week window.
type WeekTotals struct {
	Expense decimal.Decimal `json:"expense"`
	Income  decimal.Decimal `json:"income"`
}

// WeeklyComparison contrasts the current week so far with the previous one.
type WeeklyComparison struct {
	ThisWeek WeekTotals `json:"this_week"`
	LastWeek WeekTotals `json:"last_week"`
}
