package journal

import (
	"context"
	"database/sql"
	"fmt"
)

// GetRun returns a single run record by ID.
func (j *SQLiteJournal) GetRun(ctx context.Context, runID string) (RunRecord, error) {
	var rec RunRecord

	row := j.db.QueryRowContext(ctx, `
		SELECT run_id, started_at, reporting_currency, scenarios, portfolio_file
		FROM runs
		WHERE run_id = ?`, runID)

	err := row.Scan(
		&rec.RunID,
		&rec.StartedAt,
		&rec.ReportingCurrency,
		&rec.Scenarios,
		&rec.PortfolioFile,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListResultsByRun returns all results for a run, ordered by trade,
// measure and scenario.
func (j *SQLiteJournal) ListResultsByRun(ctx context.Context, runID string) ([]ResultRecord, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT run_id, trade_id, measure, scenario, currency, amount, status, detail, computed_at
		FROM results
		WHERE run_id = ?
		ORDER BY trade_id, measure, scenario`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ResultRecord
	for rows.Next() {
		var rec ResultRecord
		if err := rows.Scan(
			&rec.RunID,
			&rec.TradeID,
			&rec.Measure,
			&rec.Scenario,
			&rec.Currency,
			&rec.Amount,
			&rec.Status,
			&rec.Detail,
			&rec.ComputedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ListFailuresByRun returns only the failed evaluations of a run.
func (j *SQLiteJournal) ListFailuresByRun(ctx context.Context, runID string) ([]ResultRecord, error) {
	all, err := j.ListResultsByRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	var out []ResultRecord
	for _, rec := range all {
		if rec.Status == StatusError {
			out = append(out, rec)
		}
	}
	return out, nil
}
