// journal/schema.go
package journal

// Amounts are stored as TEXT so decimals survive the round trip exactly.
const Schema = `
CREATE TABLE IF NOT EXISTS fills (
	fill_id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	side TEXT NOT NULL,
	symbol TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	price TEXT NOT NULL,
	gross TEXT NOT NULL,
	fee TEXT NOT NULL,
	net TEXT NOT NULL,
	cash_after TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_fills_time ON fills(time);

CREATE TABLE IF NOT EXISTS equity (
	time DATETIME NOT NULL,
	tick INTEGER NOT NULL,
	cash TEXT NOT NULL,
	portfolio TEXT NOT NULL,
	total TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_equity_time ON equity(time);
`
