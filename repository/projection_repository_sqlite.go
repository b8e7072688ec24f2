package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"revshare-calculator/domain"
)

type SQLiteProjectionRepository struct {
	db *sql.DB
}

func NewSQLiteProjectionRepository(db *sql.DB) *SQLiteProjectionRepository {
	return &SQLiteProjectionRepository{db: db}
}

func (r *SQLiteProjectionRepository) Save(
	ctx context.Context,
	input domain.ProjectionInput,
	result domain.ProjectionResult,
) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO projections (
		id, investment_amount, monthly_revenue, share_ratio_percent, annual_rate_percent,
		start_year, start_month, duration_days, duration_days_exact, capped_amount,
		monthly_share_amount, cap_year, cap_month, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		input.InvestmentAmount,
		input.MonthlyRevenue,
		input.ShareRatioPercent,
		input.AnnualRatePercent,
		input.StartYear,
		input.StartMonth,
		result.DurationDays,
		result.DurationDaysExact,
		result.CappedAmount,
		result.MonthlyShareAmount,
		result.CapReachedYearMonth.Year,
		result.CapReachedYearMonth.Month,
		time.Now().UTC().Format(tsLayout),
	)
	if err != nil {
		return fmt.Errorf("insert projection: %w", err)
	}
	return nil
}

func (r *SQLiteProjectionRepository) Recent(ctx context.Context, limit int) ([]domain.ProjectionRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `SELECT
		id, investment_amount, monthly_revenue, share_ratio_percent, annual_rate_percent,
		start_year, start_month, duration_days, duration_days_exact, capped_amount,
		monthly_share_amount, cap_year, cap_month, created_at
	FROM projections ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query projections: %w", err)
	}
	defer rows.Close()

	var out []domain.ProjectionRecord
	for rows.Next() {
		var (
			rec       domain.ProjectionRecord
			createdAt string
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.Input.InvestmentAmount,
			&rec.Input.MonthlyRevenue,
			&rec.Input.ShareRatioPercent,
			&rec.Input.AnnualRatePercent,
			&rec.Input.StartYear,
			&rec.Input.StartMonth,
			&rec.Result.DurationDays,
			&rec.Result.DurationDaysExact,
			&rec.Result.CappedAmount,
			&rec.Result.MonthlyShareAmount,
			&rec.Result.CapReachedYearMonth.Year,
			&rec.Result.CapReachedYearMonth.Month,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan projection: %w", err)
		}
		if rec.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
