package repository

import (
	"context"
	"fmt"
	"sync"

	"revshare-calculator/domain"
)

// RecordRepositoryMemory keeps records in memory, in insertion order.
type RecordRepositoryMemory struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]domain.Record
}

func NewRecordRepositoryMemory() *RecordRepositoryMemory {
	return &RecordRepositoryMemory{
		byID: map[string]domain.Record{},
	}
}

func (r *RecordRepositoryMemory) Create(_ context.Context, record domain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[record.ID]; exists {
		return fmt.Errorf("record %s already exists", record.ID)
	}
	r.byID[record.ID] = record
	r.order = append(r.order, record.ID)
	return nil
}

func (r *RecordRepositoryMemory) Update(_ context.Context, record domain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[record.ID]; !exists {
		return ErrRecordNotFound
	}
	r.byID[record.ID] = record
	return nil
}

func (r *RecordRepositoryMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrRecordNotFound
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *RecordRepositoryMemory) Get(_ context.Context, id string) (domain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.byID[id]
	if !ok {
		return domain.Record{}, ErrRecordNotFound
	}
	return record, nil
}

func (r *RecordRepositoryMemory) List(_ context.Context) ([]domain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Record, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
