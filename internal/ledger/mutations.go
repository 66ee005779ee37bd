package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	rlog "github.com/roro-dev/roro/internal/log"
	"github.com/roro-dev/roro/internal/model"
	"github.com/roro-dev/roro/internal/query"
)

// createdAtLayout matches the microsecond ISO-8601 timestamps in existing
// ledger files so that created_at sorts lexically.
const createdAtLayout = "2006-01-02T15:04:05.000000"

// AddRecordParams holds the caller-supplied fields of a new record.
type AddRecordParams struct {
	Kind     model.Kind
	Amount   decimal.Decimal
	Category string
	Icon     string
	Note     string
	Date     string // "YYYY-MM-DD"
}

// ParseAmount parses a user-entered amount. Non-numeric and non-positive
// input yields ErrInvalidAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s must be greater than zero", ErrInvalidAmount, amount)
	}
	return amount, nil
}

// AddRecord creates a record stamped with the current time, appends it and
// persists the ledger. The category is not checked against the category table.
func (l *Ledger) AddRecord(p AddRecordParams) (model.Record, error) {
	if !p.Amount.IsPositive() {
		return model.Record{}, fmt.Errorf("%w: %s must be greater than zero", ErrInvalidAmount, p.Amount)
	}
	if !p.Kind.Valid() {
		return model.Record{}, fmt.Errorf("%w: %q", ErrInvalidKind, p.Kind)
	}

	now := l.now()
	r := model.Record{
		ID:        l.ids.Next(now),
		Kind:      p.Kind,
		Amount:    p.Amount,
		Category:  p.Category,
		Icon:      p.Icon,
		Note:      p.Note,
		Date:      p.Date,
		CreatedAt: now.Format(createdAtLayout),
	}
	l.doc.Records = append(l.doc.Records, r)
	l.log.Debug("record added", rlog.FieldOperation, rlog.OpCreate, rlog.FieldRecordID, r.ID, rlog.FieldKind, r.Kind)
	l.persist(rlog.OpCreate)
	return r, nil
}

// DeleteRecord removes every record with the given ID and persists the
// ledger, even when nothing matched. It returns the number removed.
func (l *Ledger) DeleteRecord(recordID int64) int {
	kept := l.doc.Records[:0]
	for _, r := range l.doc.Records {
		if r.ID != recordID {
			kept = append(kept, r)
		}
	}
	removed := len(l.doc.Records) - len(kept)
	clear(l.doc.Records[len(kept):])
	l.doc.Records = kept
	l.log.Debug("records deleted", rlog.FieldOperation, rlog.OpDelete, rlog.FieldRecordID, recordID, "removed", removed)
	l.persist(rlog.OpDelete)
	return removed
}

// ClearAllRecords empties the record list, keeping categories, budgets and
// settings, and persists the ledger.
func (l *Ledger) ClearAllRecords() {
	l.doc.Records = []model.Record{}
	l.log.Info("all records cleared", rlog.FieldOperation, rlog.OpClear)
	l.persist(rlog.OpClear)
}

// SetMonthlyBudget sets the budget for year/month and makes it the default
// for months without their own budget.
func (l *Ledger) SetMonthlyBudget(year, month int, amount decimal.Decimal) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s must be greater than zero", ErrInvalidAmount, amount)
	}

	key := query.MonthKey(year, month)
	l.doc.Budgets[key] = amount
	l.doc.Settings.MonthlyBudget = amount
	l.log.Debug("budget set", rlog.FieldOperation, rlog.OpBudget, rlog.FieldMonth, key)
	l.persist(rlog.OpBudget)
	return nil
}
