package model

import "github.com/shopspring/decimal"

// DefaultCurrency is the ISO 4217 code used by a brand new ledger.
const DefaultCurrency = "CNY"

// DefaultCategories returns the built-in category table. Each call returns
// a fresh copy.
func DefaultCategories() Categories {
	return Categories{
		KindExpense: {
			{Name: "餐饮", Icon: "🍜", Color: "#FF6B6B"},
			{Name: "交通", Icon: "🚗", Color: "#4ECDC4"},
			{Name: "购物", Icon: "🛍️", Color: "#FFD93D"},
			{Name: "娱乐", Icon: "🎮", Color: "#6C5CE7"},
			{Name: "居住", Icon: "🏠", Color: "#A29BFE"},
			{Name: "医疗", Icon: "💊", Color: "#FD79A8"},
			{Name: "教育", Icon: "📚", Color: "#00B894"},
			{Name: "通讯", Icon: "📱", Color: "#74B9FF"},
			{Name: "其他", Icon: "📦", Color: "#B2BEC3"},
		},
		KindIncome: {
			{Name: "工资", Icon: "💰", Color: "#00B894"},
			{Name: "奖金", Icon: "🎁", Color: "#FDCB6E"},
			{Name: "理财", Icon: "📈", Color: "#0984E3"},
			{Name: "兼职", Icon: "💼", Color: "#E17055"},
			{Name: "其他", Icon: "💵", Color: "#B2BEC3"},
		},
	}
}

// DefaultDocument returns an empty ledger with the built-in categories.
func DefaultDocument() *Document {
	return &Document{
		Records:    []Record{},
		Categories: DefaultCategories(),
		Budgets:    map[string]decimal.Decimal{},
		Settings: Settings{
			MonthlyBudget: decimal.Zero,
			Currency:      DefaultCurrency,
		},
	}
}
