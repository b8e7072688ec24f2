package repository

import (
	"context"

	"revshare-calculator/domain"
)

type ProjectionRepository interface {
	Save(ctx context.Context, input domain.ProjectionInput, result domain.ProjectionResult) error
	// Recent returns up to limit saved projections, newest first.
	Recent(ctx context.Context, limit int) ([]domain.ProjectionRecord, error)
}
