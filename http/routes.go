package http

import (
	"net/http"

	"go.uber.org/zap"
)

type Handlers struct {
	Projection  *ProjectionHandler
	Feasibility *FeasibilityHandler
	Records     *RecordHandler
}

// NewRouter registers every endpoint behind the rate limiter.
func NewRouter(h Handlers, limiter *RateLimiter, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/projection/calculate", h.Projection.CalculateProjection)
	mux.HandleFunc("/projection/history", h.Projection.History)

	mux.HandleFunc("/feasibility/calculate", h.Feasibility.Calculate)
	mux.HandleFunc("/feasibility/defaults", h.Feasibility.Defaults)

	mux.HandleFunc("GET /records", h.Records.List)
	mux.HandleFunc("POST /records", h.Records.Create)
	mux.HandleFunc("GET /records/stats", h.Records.Statistics)
	mux.HandleFunc("GET /records/rbo-progress", h.Records.RBOProgress)
	mux.HandleFunc("GET /records/export", h.Records.Export)
	mux.HandleFunc("GET /records/{id}", h.Records.Get)
	mux.HandleFunc("PUT /records/{id}", h.Records.Update)
	mux.HandleFunc("DELETE /records/{id}", h.Records.Delete)

	return RateLimitMiddleware(limiter, logger, mux)
}
