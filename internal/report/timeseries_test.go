package report

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallied-dev/tallied/internal/model"
)

func d(y, m, day int) model.Date {
	return model.Date{Year: y, Month: time.Month(m), Day: day}
}

func dec(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func tx(name, amount string, date model.Date, kind model.TransactionKind, categoryID string) model.Transaction {
	return model.Transaction{
		ID:         name,
		Name:       name,
		Amount:     dec(amount),
		Date:       date,
		Kind:       kind,
		CategoryID: categoryID,
	}
}

func TestAggregateByDay_MergesSameDate(t *testing.T) {
	txns := []model.Transaction{
		tx("Salary", "100", d(2024, 1, 5), model.KindIncome, "c1"),
		tx("Bonus", "50", d(2024, 1, 5), model.KindIncome, "c1"),
		tx("Interest", "30", d(2024, 1, 6), model.KindIncome, "c2"),
	}

	points := AggregateByDay(txns)
	require.Len(t, points, 2)

	assert.Equal(t, d(2024, 1, 5), points[0].Date)
	assert.Equal(t, "Jan 5", points[0].ShortLabel)
	assert.Equal(t, "Jan 5, 2024", points[0].FullLabel)
	assert.True(t, points[0].TotalAmount.Equal(dec("150")))
	assert.Equal(t, 2, points[0].TransactionCount)

	assert.Equal(t, d(2024, 1, 6), points[1].Date)
	assert.True(t, points[1].TotalAmount.Equal(dec("30")))
	assert.Equal(t, 1, points[1].TransactionCount)
}

func TestAggregateByDay_AscendingRegardlessOfInputOrder(t *testing.T) {
	txns := []model.Transaction{
		tx("c", "3", d(2024, 3, 1), model.KindExpense, "x"),
		tx("a", "1", d(2024, 1, 15), model.KindExpense, "x"),
		tx("b", "2", d(2024, 2, 28), model.KindExpense, "x"),
		tx("d", "4", d(2023, 12, 31), model.KindExpense, "x"),
	}

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		shuffled := make([]model.Transaction, len(txns))
		copy(shuffled, txns)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		points := AggregateByDay(shuffled)
		require.Len(t, points, 4)
		for i := 1; i < len(points); i++ {
			assert.True(t, points[i-1].Date.Before(points[i].Date),
				"points must be strictly ascending by date")
		}
	}
}

func TestAggregateByDay_ConservesTotal(t *testing.T) {
	txns := []model.Transaction{
		tx("a", "10.10", d(2024, 1, 1), model.KindExpense, "x"),
		tx("b", "0.20", d(2024, 1, 1), model.KindExpense, "x"),
		tx("c", "0.30", d(2024, 1, 2), model.KindExpense, "x"),
		tx("d", "99.99", d(2024, 2, 2), model.KindIncome, "y"),
	}

	input := decimal.Zero
	for _, tr := range txns {
		input = input.Add(tr.Amount)
	}

	output := decimal.Zero
	for _, p := range AggregateByDay(txns) {
		output = output.Add(p.TotalAmount)
	}
	assert.True(t, input.Equal(output), "sum over days must equal sum over transactions")
}

func TestAggregateByDay_DecimalSums(t *testing.T) {
	// 0.1 + 0.2 must come out as exactly 0.3, not a float artifact.
	txns := []model.Transaction{
		tx("a", "0.1", d(2024, 1, 1), model.KindExpense, "x"),
		tx("b", "0.2", d(2024, 1, 1), model.KindExpense, "x"),
	}
	points := AggregateByDay(txns)
	require.Len(t, points, 1)
	assert.Equal(t, "0.3", points[0].TotalAmount.String())
}

func TestAggregateByDay_Empty(t *testing.T) {
	assert.Empty(t, AggregateByDay(nil))
	assert.Empty(t, AggregateByDay([]model.Transaction{}))
}

func TestAggregateByDay_ZeroAmountStillProducesPoint(t *testing.T) {
	points := AggregateByDay([]model.Transaction{
		tx("free", "0", d(2024, 5, 1), model.KindExpense, "x"),
	})
	require.Len(t, points, 1)
	assert.True(t, points[0].TotalAmount.IsZero())
	assert.Equal(t, 1, points[0].TransactionCount)
}

func TestAggregateByDay_DoesNotMutateInput(t *testing.T) {
	txns := []model.Transaction{
		tx("b", "2", d(2024, 1, 2), model.KindExpense, "x"),
		tx("a", "1", d(2024, 1, 1), model.KindExpense, "x"),
	}
	AggregateByDay(txns)
	assert.Equal(t, "b", txns[0].Name, "input order must be untouched")
	assert.Equal(t, "a", txns[1].Name)
}

func TestAggregateByDay_Idempotent(t *testing.T) {
	txns := []model.Transaction{
		tx("a", "1.50", d(2024, 1, 5), model.KindIncome, "c"),
		tx("b", "2.25", d(2024, 1, 6), model.KindIncome, "c"),
	}
	first := AggregateByDay(txns)
	second := AggregateByDay(txns)
	assert.Equal(t, first, second)
}
