package model

// CategoryType restricts a category to one transaction kind.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// Category labels transactions for breakdown reporting.
type Category struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type CategoryType `json:"type"`
	Icon string       `json:"icon,omitempty"`
}

// Accepts reports whether a transaction of the given kind may carry
// this category.
func (c Category) Accepts(k TransactionKind) bool {
	return string(c.Type) == string(k)
}
