package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tallied-dev/tallied/internal/id"
	"github.com/tallied-dev/tallied/internal/normalize"
)

// JSONParser reads a snapshot exported as a JSON array of records, the
// shape the remote API returns.
type JSONParser struct{}

// Format returns the parser name.
func (p *JSONParser) Format() string { return "json" }

// jsonRecord matches the store's wire shape. Amount arrives as a JSON
// number; it is carried as text so no float conversion happens on the
// way to the normalizer.
type jsonRecord struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Amount     json.Number `json:"amount"`
	Date       string      `json:"date"`
	CategoryID string      `json:"categoryId"`
	Kind       string      `json:"kind"`
	Icon       string      `json:"icon"`
}

// Parse reads a JSON snapshot and returns raw records. Records without
// an id get one assigned, matching store behavior.
func (p *JSONParser) Parse(r io.Reader) ([]normalize.RawTransaction, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var records []jsonRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding JSON snapshot: %w", err)
	}

	raws := make([]normalize.RawTransaction, 0, len(records))
	for _, rec := range records {
		raws = append(raws, normalize.RawTransaction{
			ID:         id.Ensure(rec.ID),
			Name:       rec.Name,
			Amount:     rec.Amount.String(),
			Date:       rec.Date,
			CategoryID: rec.CategoryID,
			Kind:       rec.Kind,
			Icon:       rec.Icon,
		})
	}
	return raws, nil
}
