package report

import (
	"sort"

	"github.com/tallied-dev/tallied/internal/model"
)

// MostRecent returns at most limit transactions ordered newest first by
// date. Source order stands in for insertion order and is preserved
// among equal dates (stable sort). The input slice is never reordered
// or truncated; the result is a fresh slice. limit <= 0 yields an empty
// result.
func MostRecent(txns []model.Transaction, limit int) []model.Transaction {
	if limit <= 0 || len(txns) == 0 {
		return nil
	}

	out := make([]model.Transaction, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].Date.Before(out[i].Date)
	})

	if limit < len(out) {
		out = out[:limit:limit]
	}
	return out
}
