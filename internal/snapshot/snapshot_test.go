package snapshot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONParser_Parse(t *testing.T) {
	input := `[
		{"id": "tx-1", "name": "Salary", "amount": 2500.00, "date": "2024-03-01", "categoryId": "cat-salary", "kind": "income", "icon": "💼"},
		{"name": "Groceries", "amount": 42.5, "date": "2024-03-02", "categoryId": "cat-groceries", "kind": "expense"}
	]`

	raws, err := (&JSONParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, raws, 2)

	assert.Equal(t, "tx-1", raws[0].ID)
	assert.Equal(t, "Salary", raws[0].Name)
	assert.Equal(t, "2500.00", raws[0].Amount)
	assert.Equal(t, "2024-03-01", raws[0].Date)
	assert.Equal(t, "cat-salary", raws[0].CategoryID)
	assert.Equal(t, "income", raws[0].Kind)

	assert.NotEmpty(t, raws[1].ID, "blank id must be assigned")
	assert.Equal(t, "42.5", raws[1].Amount)
}

func TestJSONParser_Malformed(t *testing.T) {
	_, err := (&JSONParser{}).Parse(strings.NewReader(`{"not": "an array"`))
	require.Error(t, err)
}

func TestCSVParser_Parse(t *testing.T) {
	input := Header + "\n" +
		"tx-1,Salary,2500.00,2024-03-01,cat-salary,income,💼\n" +
		",Groceries,42.50,2024-03-02,cat-groceries,expense,\n"

	raws, err := (&CSVParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, raws, 2)

	assert.Equal(t, "tx-1", raws[0].ID)
	assert.Equal(t, "2500.00", raws[0].Amount)
	assert.NotEmpty(t, raws[1].ID)
	assert.Equal(t, "Groceries", raws[1].Name)
}

func TestCSVParser_Empty(t *testing.T) {
	raws, err := (&CSVParser{}).Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, raws)

	raws, err = (&CSVParser{}).Parse(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, raws)
}

func TestCSVParser_WrongFieldCount(t *testing.T) {
	_, err := (&CSVParser{}).Parse(strings.NewReader("a,b,c\n"))
	require.Error(t, err)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("json"))
	assert.NotNil(t, r.Get("CSV"))
	assert.Nil(t, r.Get("xml"))

	assert.Panics(t, func() { r.Register(&JSONParser{}) })
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, "csv", FormatForPath("export.csv"))
	assert.Equal(t, "csv", FormatForPath("/tmp/EXPORT.CSV"))
	assert.Equal(t, "json", FormatForPath("export.json"))
	assert.Equal(t, "json", FormatForPath("export"))
}
