package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallied-dev/tallied/internal/model"
)

func testCatalog() []model.Category {
	return []model.Category{
		{ID: "c-salary", Name: "Salary", Type: model.CategoryIncome},
		{ID: "c-rent", Name: "Rent", Type: model.CategoryExpense},
		{ID: "c-food", Name: "Food", Type: model.CategoryExpense},
	}
}

func TestService_Get(t *testing.T) {
	svc := NewService(testCatalog())

	c, ok := svc.Get("c-rent")
	require.True(t, ok)
	assert.Equal(t, "Rent", c.Name)

	_, ok = svc.Get("c-missing")
	assert.False(t, ok)
}

func TestService_Exists(t *testing.T) {
	svc := NewService(testCatalog())
	assert.True(t, svc.Exists("c-salary"))
	assert.False(t, svc.Exists(""))
}

func TestService_ByType(t *testing.T) {
	svc := NewService(testCatalog())

	expenses := svc.ByType(model.CategoryExpense)
	require.Len(t, expenses, 2)
	assert.Equal(t, "Rent", expenses[0].Name)
	assert.Equal(t, "Food", expenses[1].Name)

	income := svc.ByType(model.CategoryIncome)
	require.Len(t, income, 1)
	assert.Equal(t, "Salary", income[0].Name)
}

func TestService_ValidFor(t *testing.T) {
	svc := NewService(testCatalog())
	assert.True(t, svc.ValidFor("c-salary", model.KindIncome))
	assert.False(t, svc.ValidFor("c-salary", model.KindExpense), "income category rejects expenses")
	assert.False(t, svc.ValidFor("c-missing", model.KindIncome))
}

func TestDefaultCatalog(t *testing.T) {
	svc := NewService(DefaultCatalog())
	assert.NotEmpty(t, svc.ByType(model.CategoryIncome))
	assert.NotEmpty(t, svc.ByType(model.CategoryExpense))

	ids := map[string]bool{}
	for _, c := range svc.All() {
		assert.False(t, ids[c.ID], "duplicate id %q", c.ID)
		ids[c.ID] = true
		assert.NotEmpty(t, c.Name)
	}
}
