package normalize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tallied-dev/tallied/internal/model"
)

// Sentinel errors for per-record validation failures.
var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidKind   = errors.New("invalid kind")
	ErrMissingField  = errors.New("missing required field")
)

// Mode selects the validation context.
type Mode int

const (
	// Create applies the strict rules for user-entered records: amount
	// must be greater than zero, and name and category are required.
	Create Mode = iota
	// Aggregate is the defensive mode for records already held by the
	// store: zero amounts and missing names/categories are tolerated so
	// a report with one odd row still renders the rest.
	Aggregate
)

// RawTransaction is a loosely-typed record as delivered by the store
// layer. Fields are uninterpreted strings until normalization.
type RawTransaction struct {
	ID         string
	Name       string
	Amount     string
	Date       string
	CategoryID string
	Kind       string
	Icon       string
}

// RecordError describes why a single raw record was rejected.
type RecordError struct {
	Index int
	Field string
	Err   error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %d: field %q: %v", e.Index, e.Field, e.Err)
}

func (e RecordError) Unwrap() error { return e.Err }

// Transaction validates and coerces one raw record into the canonical
// shape. Pure transform: raw is never modified.
func Transaction(raw RawTransaction, mode Mode) (model.Transaction, error) {
	fail := func(field string, err error) (model.Transaction, error) {
		return model.Transaction{}, RecordError{Field: field, Err: err}
	}

	name := strings.TrimSpace(raw.Name)
	if name == "" && mode == Create {
		return fail("name", ErrMissingField)
	}

	amountStr := strings.TrimSpace(raw.Amount)
	if amountStr == "" {
		return fail("amount", ErrInvalidAmount)
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return fail("amount", fmt.Errorf("%w: %q", ErrInvalidAmount, raw.Amount))
	}
	if amount.IsNegative() {
		return fail("amount", fmt.Errorf("%w: negative", ErrInvalidAmount))
	}
	if amount.IsZero() && mode == Create {
		return fail("amount", fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount))
	}

	date, err := model.ParseDate(strings.TrimSpace(raw.Date))
	if err != nil {
		return fail("date", fmt.Errorf("%w: %q", ErrInvalidDate, raw.Date))
	}

	kind := model.TransactionKind(strings.ToLower(strings.TrimSpace(raw.Kind)))
	if !kind.Valid() {
		if raw.Kind == "" {
			return fail("kind", ErrMissingField)
		}
		return fail("kind", fmt.Errorf("%w: %q", ErrInvalidKind, raw.Kind))
	}

	categoryID := strings.TrimSpace(raw.CategoryID)
	if categoryID == "" && mode == Create {
		return fail("categoryId", ErrMissingField)
	}

	return model.Transaction{
		ID:         strings.TrimSpace(raw.ID),
		Name:       name,
		Amount:     amount,
		Date:       date,
		CategoryID: categoryID,
		Kind:       kind,
		Icon:       raw.Icon,
	}, nil
}

// All normalizes a batch with partial tolerance: rejected records are
// reported and skipped, valid records flow through in source order. The
// returned errors carry the index of the offending raw record.
func All(raws []RawTransaction, mode Mode) ([]model.Transaction, []RecordError) {
	var (
		txns []model.Transaction
		errs []RecordError
	)
	for i, raw := range raws {
		tx, err := Transaction(raw, mode)
		if err != nil {
			var re RecordError
			if errors.As(err, &re) {
				re.Index = i
				errs = append(errs, re)
			} else {
				errs = append(errs, RecordError{Index: i, Err: err})
			}
			continue
		}
		txns = append(txns, tx)
	}
	return txns, errs
}
