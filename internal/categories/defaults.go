package categories

import "github.com/tallied-dev/tallied/internal/model"

// DefaultCatalog returns the starter category catalog written by init.
func DefaultCatalog() []model.Category {
	return []model.Category{
		{ID: "cat-salary", Name: "Salary", Type: model.CategoryIncome, Icon: "💼"},
		{ID: "cat-freelance", Name: "Freelance", Type: model.CategoryIncome, Icon: "🧾"},
		{ID: "cat-investments", Name: "Investments", Type: model.CategoryIncome, Icon: "📈"},
		{ID: "cat-rent", Name: "Rent", Type: model.CategoryExpense, Icon: "🏠"},
		{ID: "cat-groceries", Name: "Groceries", Type: model.CategoryExpense, Icon: "🛒"},
		{ID: "cat-transport", Name: "Transport", Type: model.CategoryExpense, Icon: "🚌"},
		{ID: "cat-utilities", Name: "Utilities", Type: model.CategoryExpense, Icon: "💡"},
		{ID: "cat-entertainment", Name: "Entertainment", Type: model.CategoryExpense, Icon: "🎬"},
	}
}
