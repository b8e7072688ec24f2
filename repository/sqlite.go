package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const tsLayout = time.RFC3339Nano

var schema = []string{
	`CREATE TABLE IF NOT EXISTS projections (
		id TEXT PRIMARY KEY,
		investment_amount REAL NOT NULL,
		monthly_revenue REAL NOT NULL,
		share_ratio_percent REAL NOT NULL,
		annual_rate_percent REAL NOT NULL,
		start_year INTEGER NOT NULL,
		start_month INTEGER NOT NULL,
		duration_days INTEGER NOT NULL,
		duration_days_exact REAL NOT NULL,
		capped_amount REAL NOT NULL,
		monthly_share_amount REAL NOT NULL,
		cap_year INTEGER NOT NULL,
		cap_month INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS records (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		process_date TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		system TEXT NOT NULL DEFAULT '',
		rbo_code TEXT NOT NULL DEFAULT '',
		internal_rbo_code TEXT NOT NULL DEFAULT '',
		short_name TEXT NOT NULL DEFAULT '',
		trading_account TEXT NOT NULL DEFAULT '',
		cycle_start_date TEXT NOT NULL DEFAULT '',
		cycle_end_date TEXT NOT NULL DEFAULT '',
		info_flow_oa TEXT NOT NULL DEFAULT '',
		info_flow_date TEXT NOT NULL DEFAULT '',
		payable_amount REAL NOT NULL DEFAULT 0,
		actual_amount REAL NOT NULL DEFAULT 0,
		capital_flow_oa TEXT NOT NULL DEFAULT '',
		capital_flow_date TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// OpenSQLite opens the database at path and creates the tables if needed.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// modernc sqlite serializes writers; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
	}
	return db, nil
}

func parseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(tsLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return t, nil
}
