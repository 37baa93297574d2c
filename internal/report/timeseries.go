package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tallied-dev/tallied/internal/model"
)

// DailyAggregate is one point on a trend chart: every transaction that
// falls on a single calendar date, merged.
type DailyAggregate struct {
	Date             model.Date      `json:"date"`
	ShortLabel       string          `json:"shortLabel"`
	FullLabel        string          `json:"fullLabel"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TransactionCount int             `json:"transactionCount"`
}

// AggregateByDay groups transactions by calendar date and sums amounts
// per date. Output is ascending by date with one entry per distinct
// date; trend charts depend on that ordering. Input order is irrelevant
// and the input is never modified. Empty input yields an empty result.
func AggregateByDay(txns []model.Transaction) []DailyAggregate {
	if len(txns) == 0 {
		return nil
	}

	byDate := make(map[model.Date]*DailyAggregate, len(txns))
	for _, tx := range txns {
		agg, ok := byDate[tx.Date]
		if !ok {
			agg = &DailyAggregate{
				Date:        tx.Date,
				ShortLabel:  tx.Date.ShortLabel(),
				FullLabel:   tx.Date.FullLabel(),
				TotalAmount: decimal.Zero,
			}
			byDate[tx.Date] = agg
		}
		agg.TotalAmount = agg.TotalAmount.Add(tx.Amount)
		agg.TransactionCount++
	}

	out := make([]DailyAggregate, 0, len(byDate))
	for _, agg := range byDate {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
