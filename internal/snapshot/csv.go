package snapshot

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/tallied-dev/tallied/internal/id"
	"github.com/tallied-dev/tallied/internal/normalize"
)

// CSVParser reads a snapshot exported as CSV.
type CSVParser struct{}

// Header is the expected CSV header row.
const Header = "id,name,amount,date,category_id,kind,icon"

const (
	numFields  = 7
	colID      = 0
	colName    = 1
	colAmount  = 2
	colDate    = 3
	colCatID   = 4
	colKind    = 5
	colIcon    = 6
)

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Parse reads a CSV snapshot and returns raw records. A leading header
// row is skipped; blank ids are assigned.
func (p *CSVParser) Parse(r io.Reader) ([]normalize.RawTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV snapshot: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	if records[0][colID] == "id" {
		records = records[1:]
	}

	raws := make([]normalize.RawTransaction, 0, len(records))
	for _, rec := range records {
		raws = append(raws, normalize.RawTransaction{
			ID:         id.Ensure(rec[colID]),
			Name:       rec[colName],
			Amount:     rec[colAmount],
			Date:       rec[colDate],
			CategoryID: rec[colCatID],
			Kind:       rec[colKind],
			Icon:       rec[colIcon],
		})
	}
	return raws, nil
}
