package model

import "github.com/shopspring/decimal"

// TransactionKind classifies the direction of money movement.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Valid reports whether k is a recognized kind.
func (k TransactionKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is a canonical income or expense record as produced by the
// normalizer. Amount is always >= 0; direction is carried by Kind, never
// by a negative amount.
type Transaction struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Date       Date            `json:"date"`
	CategoryID string          `json:"categoryId"`
	Kind       TransactionKind `json:"kind"`
	Icon       string          `json:"icon,omitempty"`
}
