package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, started_at, reporting_currency, scenarios, portfolio_file)
		VALUES (?, ?, ?, ?, ?)`,
		r.RunID, r.StartedAt, r.ReportingCurrency, r.Scenarios, r.PortfolioFile,
	)
	return err
}

func (j *SQLiteJournal) RecordResult(r ResultRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO results
		(run_id, trade_id, measure, scenario, currency, amount, status, detail, computed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.TradeID, r.Measure, r.Scenario,
		r.Currency, r.Amount, r.Status, r.Detail, r.ComputedAt,
	)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
