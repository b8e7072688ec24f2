package repository

import (
	"context"
	"errors"

	"revshare-calculator/domain"
)

var ErrRecordNotFound = errors.New("record not found")

// RecordRepository stores settlement records. Implementations keep
// insertion order for List.
type RecordRepository interface {
	Create(ctx context.Context, record domain.Record) error
	Update(ctx context.Context, record domain.Record) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (domain.Record, error)
	List(ctx context.Context) ([]domain.Record, error)
}
