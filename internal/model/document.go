package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Category is a named, iconified classification scoped to one Kind.
type Category struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Categories is the category table grouped by kind.
type Categories map[Kind][]Category

// Settings holds process-wide preferences stored in the ledger file.
type Settings struct {
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	Currency      string          `json:"currency,omitempty"`
}

// Document is the full persisted ledger.
type Document struct {
	Records    []Record                   `json:"records"`
	Categories Categories                 `json:"categories"`
	Budgets    map[string]decimal.Decimal `json:"budgets"` // keyed by "YYYY-MM"
	Settings   Settings                   `json:"settings"`
}

// RawDocument is the on-disk shape before migration. Absent top-level keys
// decode as nil, and category groups stay undecoded so that legacy
// string-list groups can be detected.
type RawDocument struct {
	Records    *[]Record                  `json:"records"`
	Categories map[Kind]json.RawMessage   `json:"categories"`
	Budgets    map[string]decimal.Decimal `json:"budgets"`
	Settings   *Settings                  `json:"settings"`
}
