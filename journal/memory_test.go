package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryJournal(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, m.RecordFill(sampleFill("F1", at)))
	require.NoError(t, m.RecordEquity(EquitySnapshot{Time: at, Tick: 1}))

	fills := m.Fills()
	require.Len(t, fills, 1)
	assert.Equal(t, "F1", fills[0].FillID)
	require.Len(t, m.Equity(), 1)

	// Copies do not alias the journal.
	fills[0].FillID = "changed"
	assert.Equal(t, "F1", m.Fills()[0].FillID)

	assert.False(t, m.Closed())
	require.NoError(t, m.Close())
	assert.True(t, m.Closed())
}

func TestNopJournal(t *testing.T) {
	t.Parallel()

	var j Journal = Nop{}
	assert.NoError(t, j.RecordFill(FillRecord{}))
	assert.NoError(t, j.RecordEquity(EquitySnapshot{}))
	assert.NoError(t, j.Close())
}
