package journal

import "sync"

// Memory keeps records in process. Tests and the headless sim use it.
type Memory struct {
	mu     sync.Mutex
	fills  []FillRecord
	equity []EquitySnapshot
	closed bool
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) RecordFill(f FillRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fills = append(m.fills, f)
	return nil
}

func (m *Memory) RecordEquity(e EquitySnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.equity = append(m.equity, e)
	return nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Fills returns a copy of the recorded fills in order.
func (m *Memory) Fills() []FillRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]FillRecord(nil), m.fills...)
}

// Equity returns a copy of the recorded snapshots in order.
func (m *Memory) Equity() []EquitySnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]EquitySnapshot(nil), m.equity...)
}

func (m *Memory) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
