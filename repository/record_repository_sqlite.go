package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"revshare-calculator/domain"
)

const recordColumns = `id, process_date, status, system, rbo_code, internal_rbo_code,
	short_name, trading_account, cycle_start_date, cycle_end_date, info_flow_oa,
	info_flow_date, payable_amount, actual_amount, capital_flow_oa, capital_flow_date,
	created_at, updated_at`

type SQLiteRecordRepository struct {
	db *sql.DB
}

func NewSQLiteRecordRepository(db *sql.DB) *SQLiteRecordRepository {
	return &SQLiteRecordRepository{db: db}
}

func (r *SQLiteRecordRepository) Create(ctx context.Context, rec domain.Record) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.ProcessDate, rec.Status, rec.System, rec.RBOCode, rec.InternalRBOCode,
		rec.ShortName, rec.TradingAccount, rec.CycleStartDate, rec.CycleEndDate, rec.InfoFlowOA,
		rec.InfoFlowDate, rec.PayableAmount, rec.ActualAmount, rec.CapitalFlowOA, rec.CapitalFlowDate,
		rec.CreatedAt.UTC().Format(tsLayout), rec.UpdatedAt.UTC().Format(tsLayout),
	)
	if err != nil {
		return fmt.Errorf("insert record %s: %w", rec.ID, err)
	}
	return nil
}

func (r *SQLiteRecordRepository) Update(ctx context.Context, rec domain.Record) error {
	res, err := r.db.ExecContext(ctx, `UPDATE records SET
		process_date = ?, status = ?, system = ?, rbo_code = ?, internal_rbo_code = ?,
		short_name = ?, trading_account = ?, cycle_start_date = ?, cycle_end_date = ?,
		info_flow_oa = ?, info_flow_date = ?, payable_amount = ?, actual_amount = ?,
		capital_flow_oa = ?, capital_flow_date = ?, updated_at = ?
	WHERE id = ?`,
		rec.ProcessDate, rec.Status, rec.System, rec.RBOCode, rec.InternalRBOCode,
		rec.ShortName, rec.TradingAccount, rec.CycleStartDate, rec.CycleEndDate,
		rec.InfoFlowOA, rec.InfoFlowDate, rec.PayableAmount, rec.ActualAmount,
		rec.CapitalFlowOA, rec.CapitalFlowDate, rec.UpdatedAt.UTC().Format(tsLayout),
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("update record %s: %w", rec.ID, err)
	}
	return requireOneRow(res)
}

func (r *SQLiteRecordRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	return requireOneRow(res)
}

func (r *SQLiteRecordRepository) Get(ctx context.Context, id string) (domain.Record, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM records WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Record{}, ErrRecordNotFound
	}
	return rec, err
}

func (r *SQLiteRecordRepository) List(ctx context.Context) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+recordColumns+` FROM records ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	out := []domain.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (domain.Record, error) {
	var (
		rec                  domain.Record
		createdAt, updatedAt string
	)
	err := row.Scan(
		&rec.ID, &rec.ProcessDate, &rec.Status, &rec.System, &rec.RBOCode, &rec.InternalRBOCode,
		&rec.ShortName, &rec.TradingAccount, &rec.CycleStartDate, &rec.CycleEndDate, &rec.InfoFlowOA,
		&rec.InfoFlowDate, &rec.PayableAmount, &rec.ActualAmount, &rec.CapitalFlowOA, &rec.CapitalFlowDate,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Record{}, err
		}
		return domain.Record{}, fmt.Errorf("scan record: %w", err)
	}
	if rec.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return domain.Record{}, err
	}
	if rec.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return domain.Record{}, err
	}
	return rec, nil
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrRecordNotFound
	}
	return nil
}
