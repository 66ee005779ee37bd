// Package migrate upgrades ledger documents loaded from disk to the current
// schema. Upgrades are detected structurally since files carry no version.
package migrate

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/roro-dev/roro/internal/model"
)

// Change names one upgrade step applied by Fix.
type Change string

const (
	ChangeEmptyDocument Change = "empty_document"
	ChangeRecords       Change = "records"
	ChangeBudgets       Change = "budgets"
	ChangeSettings      Change = "settings"
	ChangeCategories    Change = "categories"
	ChangeRecordIcons   Change = "record_icons"
)

// Fix converts raw into a current-schema document and reports which steps
// were applied. An empty result means raw was already current and does not
// need to be written back.
//
// A legacy or unrecognizable category table is replaced wholesale with the
// built-in defaults; customizations made under the old shape are lost.
func Fix(raw *model.RawDocument) (*model.Document, []Change) {
	if raw == nil {
		return model.DefaultDocument(), []Change{ChangeEmptyDocument}
	}

	var changes []Change
	doc := &model.Document{}

	if raw.Records != nil && *raw.Records != nil {
		doc.Records = *raw.Records
	} else {
		doc.Records = []model.Record{}
		changes = append(changes, ChangeRecords)
	}

	if raw.Budgets != nil {
		doc.Budgets = raw.Budgets
	} else {
		doc.Budgets = map[string]decimal.Decimal{}
		changes = append(changes, ChangeBudgets)
	}

	if raw.Settings != nil {
		doc.Settings = *raw.Settings
	} else {
		doc.Settings = model.Settings{MonthlyBudget: decimal.Zero}
		changes = append(changes, ChangeSettings)
	}

	if cats, ok := decodeCategories(raw.Categories); ok {
		doc.Categories = cats
	} else {
		doc.Categories = model.DefaultCategories()
		changes = append(changes, ChangeCategories)
	}

	if normalizeRecordIcons(doc.Records) {
		changes = append(changes, ChangeRecordIcons)
	}

	return doc, changes
}

// decodeCategories decodes a current-shape category table. It reports false
// for the legacy string-list shape and for anything it cannot decode.
func decodeCategories(raw map[model.Kind]json.RawMessage) (model.Categories, bool) {
	if raw == nil {
		return nil, false
	}
	if isLegacyGroup(raw[model.KindExpense]) {
		return nil, false
	}

	cats := make(model.Categories, len(raw))
	for _, k := range model.Kinds {
		group, ok := raw[k]
		if !ok || isNull(group) {
			return nil, false
		}
		var list []model.Category
		if err := json.Unmarshal(group, &list); err != nil {
			return nil, false
		}
		cats[k] = list
	}
	return cats, true
}

// isLegacyGroup reports whether group is a list whose first element is a
// bare string, the shape used before categories carried icons and colors.
func isLegacyGroup(group json.RawMessage) bool {
	var items []json.RawMessage
	if err := json.Unmarshal(group, &items); err != nil || len(items) == 0 {
		return false
	}
	first := bytes.TrimSpace(items[0])
	return len(first) > 0 && first[0] == '"'
}

func isNull(msg json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(msg), []byte("null"))
}

// normalizeRecordIcons splits legacy "<icon> <name>" categories on records
// that have no separate icon. It reports whether any record changed.
func normalizeRecordIcons(records []model.Record) bool {
	changed := false
	for i := range records {
		icon, name, ok := SplitLegacyCategory(records[i].Icon, records[i].Category)
		if !ok {
			continue
		}
		records[i].Icon = icon
		records[i].Category = name
		changed = true
	}
	return changed
}

// SplitLegacyCategory splits a category stored as "<icon> <name>". It only
// applies when icon is empty and the text before the first space is a
// glyph, not a word, so names such as "Eating out" are left alone. An empty
// icon counts as missing: a record saved with no icon and a category like
// "🎉 party" is split on the next load too.
func SplitLegacyCategory(icon, category string) (string, string, bool) {
	if icon != "" {
		return "", "", false
	}
	glyph, name, found := strings.Cut(category, " ")
	if !found || glyph == "" || strings.TrimSpace(name) == "" {
		return "", "", false
	}
	for _, r := range glyph {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return "", "", false
		}
	}
	return glyph, strings.TrimSpace(name), true
}
