package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	started_at DATETIME NOT NULL,
	reporting_currency TEXT NOT NULL,
	scenarios INTEGER NOT NULL,
	portfolio_file TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
	run_id TEXT NOT NULL,
	trade_id TEXT NOT NULL,
	measure TEXT NOT NULL,
	scenario TEXT NOT NULL,
	currency TEXT NOT NULL,
	amount REAL NOT NULL,
	status TEXT NOT NULL,
	detail TEXT NOT NULL,
	computed_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
CREATE INDEX IF NOT EXISTS idx_results_trade ON results(run_id, trade_id);
`
