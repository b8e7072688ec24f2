package http

import (
	"net/http"

	"go.uber.org/zap"

	"revshare-calculator/domain"
	"revshare-calculator/service"
)

type FeasibilityHandler struct {
	service *service.FeasibilityService
	logger  *zap.Logger
}

func NewFeasibilityHandler(service *service.FeasibilityService, logger *zap.Logger) *FeasibilityHandler {
	return &FeasibilityHandler{service: service, logger: logger}
}

// Calculate accepts a partial input; omitted fields keep the default model.
func (h *FeasibilityHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	input := service.DefaultFeasibilityInput()
	if err := decodeJSON(w, r, &input); err != nil {
		h.logger.Debug("decode feasibility request", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Calculate(input)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, struct {
		Input  domain.FeasibilityInput  `json:"input"`
		Result domain.FeasibilityResult `json:"result"`
	}{input, result})
}

func (h *FeasibilityHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, service.DefaultFeasibilityInput())
}
