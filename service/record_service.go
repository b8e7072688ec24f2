package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"revshare-calculator/domain"
	"revshare-calculator/repository"
)

// RecordService owns the settlement ledger. Writes are last-write-wins.
type RecordService struct {
	repo    repository.RecordRepository
	catalog map[string]domain.RBOInvestment
	logger  *zap.Logger
	now     func() time.Time
}

func NewRecordService(
	repo repository.RecordRepository,
	catalog []domain.RBOInvestment,
	logger *zap.Logger,
) *RecordService {
	byCode := make(map[string]domain.RBOInvestment, len(catalog))
	for _, inv := range catalog {
		byCode[inv.Code] = inv
	}
	return &RecordService{
		repo:    repo,
		catalog: byCode,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new record under a fresh id.
func (s *RecordService) Create(ctx context.Context, rec domain.Record) (domain.Record, error) {
	normalizeRecord(&rec)
	if err := validateRecord(rec); err != nil {
		return domain.Record{}, err
	}
	now := s.now()
	rec.ID = uuid.NewString()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if err := s.repo.Create(ctx, rec); err != nil {
		return domain.Record{}, fmt.Errorf("create record: %w", err)
	}
	s.logger.Info("record created", zap.String("id", rec.ID), zap.String("rbo_code", rec.RBOCode))
	return rec, nil
}

// Update replaces every editable field of the record with id.
func (s *RecordService) Update(ctx context.Context, id string, rec domain.Record) (domain.Record, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Record{}, err
	}
	normalizeRecord(&rec)
	if err := validateRecord(rec); err != nil {
		return domain.Record{}, err
	}
	rec.ID = existing.ID
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, rec); err != nil {
		return domain.Record{}, err
	}
	s.logger.Info("record updated", zap.String("id", id))
	return rec, nil
}

func (s *RecordService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("record deleted", zap.String("id", id))
	return nil
}

func (s *RecordService) Get(ctx context.Context, id string) (domain.Record, error) {
	return s.repo.Get(ctx, id)
}

// List returns the records matching filter in insertion order.
func (s *RecordService) List(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	out := make([]domain.Record, 0, len(all))
	for _, rec := range all {
		if matchRecord(rec, filter) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *RecordService) Statistics(ctx context.Context) (domain.RecordStatistics, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return domain.RecordStatistics{}, fmt.Errorf("list records: %w", err)
	}
	stats := domain.RecordStatistics{Total: len(all)}
	for _, rec := range all {
		switch rec.Status {
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusProcessing:
			stats.Processing++
		case domain.StatusPending:
			stats.Pending++
		}
		stats.TotalPaid += rec.ActualAmount
	}
	stats.TotalPaid = roundTo2Decimals(stats.TotalPaid)
	return stats, nil
}

// RBOProgress aggregates paid amounts per RBO code against the catalog
// investment. Catalog projects come first in catalog order.
func (s *RecordService) RBOProgress(ctx context.Context) ([]domain.RBOProgress, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	byCode := map[string]*domain.RBOProgress{}
	var codes []string
	for _, rec := range all {
		code := strings.TrimSpace(rec.RBOCode)
		p, ok := byCode[code]
		if !ok {
			p = &domain.RBOProgress{Code: code, Name: rec.ShortName}
			if inv, known := s.catalog[code]; known {
				p.Name = inv.Name
				p.Investment = inv.Investment
			}
			if p.Name == "" {
				p.Name = unknownRBOName
			}
			byCode[code] = p
			codes = append(codes, code)
		}
		p.Paid += rec.ActualAmount
		p.Count++
	}

	sort.SliceStable(codes, func(i, j int) bool {
		return s.rboOrder(codes[i]) < s.rboOrder(codes[j])
	})

	out := make([]domain.RBOProgress, 0, len(codes))
	for _, code := range codes {
		p := byCode[code]
		p.Paid = roundTo2Decimals(p.Paid)
		p.Remaining = roundTo2Decimals(p.Investment - p.Paid)
		if p.Investment > 0 {
			p.Percentage = math.Round(p.Paid/p.Investment*1000) / 10
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *RecordService) rboOrder(code string) int {
	if inv, ok := s.catalog[code]; ok && inv.Order > 0 {
		return inv.Order
	}
	return unknownRBOOrder
}

func normalizeRecord(rec *domain.Record) {
	for _, f := range textFields(rec) {
		*f = strings.TrimSpace(*f)
	}
}

func textFields(rec *domain.Record) []*string {
	return []*string{
		&rec.ProcessDate, &rec.Status, &rec.System, &rec.RBOCode, &rec.InternalRBOCode,
		&rec.ShortName, &rec.TradingAccount, &rec.CycleStartDate, &rec.CycleEndDate,
		&rec.InfoFlowOA, &rec.InfoFlowDate, &rec.CapitalFlowOA, &rec.CapitalFlowDate,
	}
}

func validateRecord(rec domain.Record) error {
	if rec.RBOCode == "" {
		return invalid("rboCode", "不能为空")
	}
	switch rec.Status {
	case "", domain.StatusCompleted, domain.StatusProcessing, domain.StatusPending:
	default:
		return invalid("status", "未知状态 %q", rec.Status)
	}
	dates := []struct {
		field string
		value string
	}{
		{"processDate", rec.ProcessDate},
		{"cycleStartDate", rec.CycleStartDate},
		{"cycleEndDate", rec.CycleEndDate},
		{"infoFlowDate", rec.InfoFlowDate},
		{"capitalFlowDate", rec.CapitalFlowDate},
	}
	for _, d := range dates {
		if d.value == "" {
			continue
		}
		if _, err := time.Parse(recordDateLayout, d.value); err != nil {
			return invalid(d.field, "日期格式必须为 YYYY-MM-DD")
		}
	}
	if rec.CycleStartDate != "" && rec.CycleEndDate != "" && rec.CycleEndDate < rec.CycleStartDate {
		return invalid("cycleEndDate", "不能早于分成周期开始日")
	}
	for field, v := range map[string]float64{
		"payableAmount": rec.PayableAmount,
		"actualAmount":  rec.ActualAmount,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return invalid(field, "金额不能为负数")
		}
	}
	return nil
}

// matchRecord applies the search box and the status, system and date
// selectors. Search is a case-insensitive substring match on any field.
func matchRecord(rec domain.Record, f domain.RecordFilter) bool {
	if f.Status != "" && rec.Status != f.Status {
		return false
	}
	if f.System != "" && rec.System != f.System {
		return false
	}
	if f.ProcessDate != "" && rec.ProcessDate != f.ProcessDate {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	values := []string{rec.ID}
	for _, p := range textFields(&rec) {
		values = append(values, *p)
	}
	values = append(values,
		strconv.FormatFloat(rec.PayableAmount, 'f', -1, 64),
		strconv.FormatFloat(rec.ActualAmount, 'f', -1, 64),
	)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrRecordNotFound)
}
