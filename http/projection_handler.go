package http

import (
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"revshare-calculator/domain"
	"revshare-calculator/service"
)

type ProjectionHandler struct {
	service *service.ProjectionService
	logger  *zap.Logger
}

func NewProjectionHandler(service *service.ProjectionService, logger *zap.Logger) *ProjectionHandler {
	return &ProjectionHandler{service: service, logger: logger}
}

// projectionRequest mirrors the calculator form. Pointers distinguish a
// missing field from an explicit zero.
type projectionRequest struct {
	InvestmentAmount  *float64 `json:"investmentAmount"`
	MonthlyRevenue    *float64 `json:"monthlyRevenue"`
	ShareRatioPercent *float64 `json:"shareRatioPercent"`
	AnnualRatePercent *float64 `json:"annualRatePercent"`
	StartMonth        string   `json:"startMonth"`
}

func (req projectionRequest) toInput() (domain.ProjectionInput, error) {
	fields := []struct {
		name  string
		value *float64
	}{
		{"investmentAmount", req.InvestmentAmount},
		{"monthlyRevenue", req.MonthlyRevenue},
		{"shareRatioPercent", req.ShareRatioPercent},
		{"annualRatePercent", req.AnnualRatePercent},
	}
	for _, f := range fields {
		if f.value == nil {
			return domain.ProjectionInput{}, &service.ValidationError{Field: f.name, Message: "不能为空"}
		}
	}
	start, err := service.ParseYearMonth(req.StartMonth)
	if err != nil {
		return domain.ProjectionInput{}, err
	}
	return domain.ProjectionInput{
		InvestmentAmount:  *req.InvestmentAmount,
		MonthlyRevenue:    *req.MonthlyRevenue,
		ShareRatioPercent: *req.ShareRatioPercent,
		AnnualRatePercent: *req.AnnualRatePercent,
		StartYear:         start.Year,
		StartMonth:        start.Month,
	}, nil
}

type projectionDisplay struct {
	DurationDays       string `json:"durationDays"`
	CappedAmount       string `json:"cappedAmount"`
	MonthlyShareAmount string `json:"monthlyShareAmount"`
	CapReachedMonth    string `json:"capReachedMonth"`
	Summary            string `json:"summary"`
}

type projectionResponse struct {
	domain.ProjectionResult
	Display projectionDisplay `json:"display"`
}

func (h *ProjectionHandler) CalculateProjection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req projectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Debug("decode projection request", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.service.Project(r.Context(), input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, projectionResponse{
		ProjectionResult: result,
		Display: projectionDisplay{
			DurationDays:       fmt.Sprintf("%d 天", result.DurationDays),
			CappedAmount:       service.FormatWan(result.CappedAmount),
			MonthlyShareAmount: service.FormatWan(result.MonthlyShareAmount),
			CapReachedMonth:    service.FormatYearMonth(result.CapReachedYearMonth),
			Summary:            service.DescribeProjection(input, result),
		},
	})
}

func (h *ProjectionHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	history, err := h.service.History(r.Context(), limit)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, history)
}
