package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"revshare-calculator/domain"
)

var exportHeader = []string{
	"处理日期", "状态", "系统", "RBO编码", "内部RBO编码", "简称", "交易账号",
	"分成周期开始日", "分成周期结束日", "信息流OA", "信息流处理日期",
	"应打款金额", "实际打款金额", "资金流OA单", "资金流处理日期",
}

// utf8BOM lets spreadsheet tools detect the encoding of the Chinese headers.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExportCSV writes the records matching filter as a spreadsheet-ready CSV.
func (s *RecordService) ExportCSV(ctx context.Context, w io.Writer, filter domain.RecordFilter) (int, error) {
	records, err := s.List(ctx, filter)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(utf8BOM); err != nil {
		return 0, fmt.Errorf("write csv: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return 0, fmt.Errorf("write csv: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.ProcessDate, r.Status, r.System, r.RBOCode, r.InternalRBOCode, r.ShortName,
			r.TradingAccount, r.CycleStartDate, r.CycleEndDate, r.InfoFlowOA, r.InfoFlowDate,
			formatAmount(r.PayableAmount), formatAmount(r.ActualAmount),
			r.CapitalFlowOA, r.CapitalFlowDate,
		}
		if err := cw.Write(row); err != nil {
			return 0, fmt.Errorf("write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("write csv: %w", err)
	}
	return len(records), nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// amount decodes a JSON number or a numeric string; "" and "/" mean zero.
type amount float64

func (a *amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
		if s == "" || s == "/" || s == "-" {
			*a = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", s)
		}
		*a = amount(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = amount(v)
	return nil
}

type seedRecord struct {
	ID              string `json:"id"`
	ProcessDate     string `json:"processDate"`
	Status          string `json:"status"`
	System          string `json:"system"`
	RBOCode         string `json:"rboCode"`
	InternalRBOCode string `json:"internalRboCode"`
	ShortName       string `json:"shortName"`
	TradingAccount  string `json:"tradingAccount"`
	CycleStartDate  string `json:"cycleStartDate"`
	CycleEndDate    string `json:"cycleEndDate"`
	InfoFlowOA      string `json:"infoFlowOA"`
	InfoFlowDate    string `json:"infoFlowDate"`
	PayableAmount   amount `json:"payableAmount"`
	ActualAmount    amount `json:"actualAmount"`
	CapitalFlowOA   string `json:"capitalFlowOA"`
	CapitalFlowDate string `json:"capitalFlowDate"`
}

type seedFile struct {
	Records []seedRecord `json:"records"`
}

// Import loads a static {"records": [...]} file into the ledger. Records are
// created with fresh ids; seed ids are not trusted.
func (s *RecordService) Import(ctx context.Context, r io.Reader) (int, error) {
	var seed seedFile
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return 0, fmt.Errorf("decode seed: %w", err)
	}
	if len(seed.Records) > MaxRecordsPerImport {
		return 0, fmt.Errorf("seed has %d records, limit is %d", len(seed.Records), MaxRecordsPerImport)
	}

	// Every record is checked before any is written, so a bad seed leaves the
	// ledger untouched and the next start retries it.
	records := make([]domain.Record, 0, len(seed.Records))
	for i, sr := range seed.Records {
		rec := domain.Record{
			ProcessDate:     sr.ProcessDate,
			Status:          sr.Status,
			System:          sr.System,
			RBOCode:         sr.RBOCode,
			InternalRBOCode: sr.InternalRBOCode,
			ShortName:       sr.ShortName,
			TradingAccount:  sr.TradingAccount,
			CycleStartDate:  sr.CycleStartDate,
			CycleEndDate:    sr.CycleEndDate,
			InfoFlowOA:      sr.InfoFlowOA,
			InfoFlowDate:    sr.InfoFlowDate,
			PayableAmount:   float64(sr.PayableAmount),
			ActualAmount:    float64(sr.ActualAmount),
			CapitalFlowOA:   sr.CapitalFlowOA,
			CapitalFlowDate: sr.CapitalFlowDate,
		}
		normalizeRecord(&rec)
		if err := validateRecord(rec); err != nil {
			return 0, fmt.Errorf("seed record %d: %w", i, err)
		}
		records = append(records, rec)
	}

	imported := 0
	for i, rec := range records {
		if _, err := s.Create(ctx, rec); err != nil {
			return imported, fmt.Errorf("seed record %d: %w", i, err)
		}
		imported++
	}
	s.logger.Info("records imported", zap.Int("count", imported))
	return imported, nil
}
