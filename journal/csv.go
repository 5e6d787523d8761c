package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

var (
	fillHeader   = []string{"fill_id", "time", "side", "symbol", "quantity", "price", "gross", "fee", "net", "cash_after"}
	equityHeader = []string{"time", "tick", "cash", "portfolio", "total"}
)

type CSV struct {
	fills  *csv.Writer
	equity *csv.Writer
	ff, ef *os.File
}

func NewCSV(fillsPath, equityPath string) (*CSV, error) {
	ff, err := os.Create(fillsPath)
	if err != nil {
		return nil, err
	}
	ef, err := os.Create(equityPath)
	if err != nil {
		_ = ff.Close()
		return nil, err
	}

	j := &CSV{
		fills:  csv.NewWriter(ff),
		equity: csv.NewWriter(ef),
		ff:     ff,
		ef:     ef,
	}
	if err := j.write(j.fills, fillHeader); err != nil {
		_ = j.Close()
		return nil, err
	}
	if err := j.write(j.equity, equityHeader); err != nil {
		_ = j.Close()
		return nil, err
	}
	return j, nil
}

func (j *CSV) RecordFill(f FillRecord) error {
	return j.write(j.fills, []string{
		f.FillID,
		f.Time.UTC().Format(time.RFC3339Nano),
		f.Side,
		f.Symbol,
		strconv.FormatInt(f.Quantity, 10),
		f.Price.String(),
		f.Gross.StringFixed(2),
		f.Fee.StringFixed(2),
		f.Net.StringFixed(2),
		f.CashAfter.StringFixed(2),
	})
}

func (j *CSV) RecordEquity(e EquitySnapshot) error {
	return j.write(j.equity, []string{
		e.Time.UTC().Format(time.RFC3339Nano),
		strconv.FormatInt(e.Tick, 10),
		e.Cash.StringFixed(2),
		e.Portfolio.StringFixed(2),
		e.Total.StringFixed(2),
	})
}

func (j *CSV) write(w *csv.Writer, row []string) error {
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (j *CSV) Close() error {
	j.fills.Flush()
	if err := j.fills.Error(); err != nil {
		return err
	}
	j.equity.Flush()
	if err := j.equity.Error(); err != nil {
		return err
	}

	if err := j.ff.Close(); err != nil {
		return fmt.Errorf("close fills: %w", err)
	}
	if err := j.ef.Close(); err != nil {
		return fmt.Errorf("close equity: %w", err)
	}
	return nil
}
