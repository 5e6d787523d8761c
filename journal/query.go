package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const fillColumns = `fill_id, time, side, symbol, quantity, price, gross, fee, net, cash_after`

type scanner interface {
	Scan(dest ...any) error
}

func scanFill(s scanner) (FillRecord, error) {
	var rec FillRecord
	err := s.Scan(
		&rec.FillID,
		&rec.Time,
		&rec.Side,
		&rec.Symbol,
		&rec.Quantity,
		&rec.Price,
		&rec.Gross,
		&rec.Fee,
		&rec.Net,
		&rec.CashAfter,
	)
	return rec, err
}

// GetFill returns a single fill by ID.
func (j *SQLite) GetFill(fillID string) (FillRecord, error) {
	row := j.db.QueryRow(`SELECT `+fillColumns+` FROM fills WHERE fill_id = ?`, fillID)

	rec, err := scanFill(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return FillRecord{}, fmt.Errorf("fill %q not found", fillID)
		}
		return FillRecord{}, err
	}
	return rec, nil
}

// ListFillsBetween returns fills whose time is within [start, end).
func (j *SQLite) ListFillsBetween(start, end time.Time) ([]FillRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+fillColumns+`
		FROM fills
		WHERE time >= ? AND time < ?
		ORDER BY time ASC, fill_id ASC`, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FillRecord
	for rows.Next() {
		rec, err := scanFill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListEquityBetween returns snapshots whose time is within [start, end).
func (j *SQLite) ListEquityBetween(start, end time.Time) ([]EquitySnapshot, error) {
	rows, err := j.db.Query(`
		SELECT time, tick, cash, portfolio, total
		FROM equity
		WHERE time >= ? AND time < ?
		ORDER BY time ASC, tick ASC`, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EquitySnapshot
	for rows.Next() {
		var e EquitySnapshot
		if err := rows.Scan(&e.Time, &e.Tick, &e.Cash, &e.Portfolio, &e.Total); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
