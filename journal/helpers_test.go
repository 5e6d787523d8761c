package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)

	return j, path
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleFill(id string, at time.Time) FillRecord {
	return FillRecord{
		FillID:    id,
		Time:      at,
		Side:      "BUY",
		Symbol:    "TECH",
		Quantity:  10,
		Price:     dec("150.1234"),
		Gross:     dec("1501.23"),
		Fee:       dec("15.01"),
		Net:       dec("1516.24"),
		CashAfter: dec("8483.76"),
	}
}
