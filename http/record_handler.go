package http

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"revshare-calculator/domain"
	"revshare-calculator/service"
)

type RecordHandler struct {
	service *service.RecordService
	logger  *zap.Logger
}

func NewRecordHandler(service *service.RecordService, logger *zap.Logger) *RecordHandler {
	return &RecordHandler{service: service, logger: logger}
}

func filterFromQuery(r *http.Request) domain.RecordFilter {
	q := r.URL.Query()
	return domain.RecordFilter{
		Search:      q.Get("q"),
		Status:      q.Get("status"),
		System:      q.Get("system"),
		ProcessDate: q.Get("date"),
	}
}

func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context(), filterFromQuery(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, records)
}

func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var rec domain.Record
	if err := decodeJSON(w, r, &rec); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	created, err := h.service.Create(r.Context(), rec)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, created)
}

func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, rec)
}

func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	var rec domain.Record
	if err := decodeJSON(w, r, &rec); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	updated, err := h.service.Update(r.Context(), r.PathValue("id"), rec)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, updated)
}

func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RecordHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Statistics(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, struct {
		domain.RecordStatistics
		TotalPaidDisplay string `json:"totalPaidDisplay"`
	}{stats, service.FormatCurrency(stats.TotalPaid)})
}

func (h *RecordHandler) RBOProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.service.RBOProgress(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, progress)
}

func (h *RecordHandler) Export(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("RBO数据_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(filename)))

	n, err := h.service.ExportCSV(r.Context(), w, filterFromQuery(r))
	if err != nil {
		// Headers may already be sent; log only.
		h.logger.Error("export records", zap.Error(err))
		return
	}
	h.logger.Debug("records exported", zap.Int("count", n))
}
