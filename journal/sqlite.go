package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is a journal backed by a sqlite3 file. All times are stored in UTC.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordFill(f FillRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO fills
		(fill_id, time, side, symbol, quantity, price, gross, fee, net, cash_after)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.FillID, f.Time.UTC(), f.Side, f.Symbol, f.Quantity,
		f.Price.String(), f.Gross.String(), f.Fee.String(), f.Net.String(), f.CashAfter.String(),
	)
	return err
}

func (j *SQLite) RecordEquity(e EquitySnapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO equity
		(time, tick, cash, portfolio, total)
		VALUES (?, ?, ?, ?, ?)`,
		e.Time.UTC(), e.Tick, e.Cash.String(), e.Portfolio.String(), e.Total.String(),
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
