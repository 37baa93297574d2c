package report

import (
	"github.com/shopspring/decimal"

	"github.com/tallied-dev/tallied/internal/model"
)

// FinancialSummary is the scalar roll-up behind the dashboard cards.
// Current-month subtotals are relative to the asOf date passed to
// Summarize, compared on (year, month) fields only.
type FinancialSummary struct {
	TotalBalance        decimal.Decimal `json:"totalBalance"`
	TotalIncome         decimal.Decimal `json:"totalIncome"`
	TotalExpense        decimal.Decimal `json:"totalExpense"`
	EntryCount          int             `json:"entryCount"`
	IncomeCount         int             `json:"incomeCount"`
	ExpenseCount        int             `json:"expenseCount"`
	CurrentMonthIncome  decimal.Decimal `json:"currentMonthIncome"`
	CurrentMonthExpense decimal.Decimal `json:"currentMonthExpense"`
}

// Summarize computes totals per kind over a snapshot. The balance may
// go negative when expenses exceed income. Pure function: recomputed in
// full on every call, nothing cached, input never modified.
func Summarize(txns []model.Transaction, asOf model.Date) FinancialSummary {
	s := FinancialSummary{
		TotalIncome:         decimal.Zero,
		TotalExpense:        decimal.Zero,
		CurrentMonthIncome:  decimal.Zero,
		CurrentMonthExpense: decimal.Zero,
	}

	for _, tx := range txns {
		switch tx.Kind {
		case model.KindIncome:
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
			s.IncomeCount++
			if tx.Date.SameMonth(asOf) {
				s.CurrentMonthIncome = s.CurrentMonthIncome.Add(tx.Amount)
			}
		case model.KindExpense:
			s.TotalExpense = s.TotalExpense.Add(tx.Amount)
			s.ExpenseCount++
			if tx.Date.SameMonth(asOf) {
				s.CurrentMonthExpense = s.CurrentMonthExpense.Add(tx.Amount)
			}
		}
	}

	s.TotalBalance = s.TotalIncome.Sub(s.TotalExpense)
	s.EntryCount = s.IncomeCount + s.ExpenseCount
	return s
}
