package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	results *csv.Writer
	file    *os.File
}

func NewCSV(resultsPath string) (*CSVJournal, error) {
	f, err := os.Create(resultsPath)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"run_id", "trade_id", "measure", "scenario", "currency", "amount", "status", "detail", "computed_at"}); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{results: w, file: f}, nil
}

// RecordRun is a no-op for the CSV backend; run metadata lives in the
// result rows' run_id column.
func (j *CSVJournal) RecordRun(RunRecord) error {
	return nil
}

func (j *CSVJournal) RecordResult(r ResultRecord) error {
	err := j.results.Write([]string{
		r.RunID,
		r.TradeID,
		r.Measure,
		r.Scenario,
		r.Currency,
		strconv.FormatFloat(r.Amount, 'f', 6, 64),
		r.Status,
		r.Detail,
		r.ComputedAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	j.results.Flush()
	return j.results.Error()
}

func (j *CSVJournal) Close() error {
	j.results.Flush()
	if err := j.results.Error(); err != nil {
		return err
	}
	return j.file.Close()
}
