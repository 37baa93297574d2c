package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tallied-dev/tallied/internal/model"
)

// Fixed bucket names for the dashboard overview ring.
const (
	BucketBalance  = "Total Balance"
	BucketIncome   = "Total Income"
	BucketExpenses = "Total Expenses"

	// UncategorizedBucket collects transactions whose category id is
	// absent from the supplied catalog.
	UncategorizedBucket = "Uncategorized"
)

// CategoryAggregate is one wedge of a breakdown chart. DisplayAmount is
// non-negative and sizes the wedge; ActualAmount keeps the true signed
// value for the label.
type CategoryAggregate struct {
	BucketName    string          `json:"bucketName"`
	DisplayAmount decimal.Decimal `json:"displayAmount"`
	ActualAmount  decimal.Decimal `json:"actualAmount"`
}

// CategoryResolver looks up categories by id.
type CategoryResolver interface {
	Get(id string) (model.Category, bool)
}

// OverviewBuckets builds the three fixed dashboard buckets. A negative
// balance still renders as a proportionate wedge: its display amount is
// the absolute value while the actual amount keeps the sign.
func OverviewBuckets(balance, income, expense decimal.Decimal) []CategoryAggregate {
	return []CategoryAggregate{
		{BucketName: BucketBalance, DisplayAmount: balance.Abs(), ActualAmount: balance},
		{BucketName: BucketIncome, DisplayAmount: income, ActualAmount: income},
		{BucketName: BucketExpenses, DisplayAmount: expense, ActualAmount: expense},
	}
}

// AggregateByCategory groups transactions by category id and sums
// amounts per group. Buckets appear in first-occurrence order; callers
// that need a magnitude-ordered legend should apply SortByMagnitude.
// Transactions whose category id is not in the catalog merge into a
// single Uncategorized bucket rather than failing the aggregation.
func AggregateByCategory(txns []model.Transaction, cats CategoryResolver) []CategoryAggregate {
	if len(txns) == 0 {
		return nil
	}

	type bucket struct {
		name  string
		total decimal.Decimal
	}
	totals := make(map[string]*bucket)
	var order []string

	for _, tx := range txns {
		key := tx.CategoryID
		name := UncategorizedBucket
		if cats != nil {
			if c, ok := cats.Get(tx.CategoryID); ok {
				name = c.Name
			} else {
				key = ""
			}
		} else {
			key = ""
		}

		b, ok := totals[key]
		if !ok {
			b = &bucket{name: name, total: decimal.Zero}
			totals[key] = b
			order = append(order, key)
		}
		b.total = b.total.Add(tx.Amount)
	}

	out := make([]CategoryAggregate, 0, len(order))
	for _, key := range order {
		b := totals[key]
		out = append(out, CategoryAggregate{
			BucketName:    b.name,
			DisplayAmount: b.total,
			ActualAmount:  b.total,
		})
	}
	return out
}

// SortByMagnitude orders buckets by display amount, largest first,
// preserving relative order among equal amounts.
func SortByMagnitude(buckets []CategoryAggregate) {
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].DisplayAmount.GreaterThan(buckets[j].DisplayAmount)
	})
}
