package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter wires every worksheet route behind the rate limiter and the
// request log.
func NewRouter(h *WorksheetHandler, limiter *RateLimiter, logger logrus.FieldLogger) *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware(logger))

	limited := func(fn http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, logger, fn)
	}

	r.Handle("/tvm/solve", limited(h.SolveTVM)).Methods(http.MethodPost)
	r.Handle("/tvm/amortization", limited(h.Amortize)).Methods(http.MethodPost)
	r.Handle("/cashflow/analyze", limited(h.AnalyzeCashFlows)).Methods(http.MethodPost)
	r.Handle("/bond/calculate", limited(h.CalculateBond)).Methods(http.MethodPost)
	r.Handle("/depreciation/schedule", limited(h.DepreciationSchedule)).Methods(http.MethodPost)
	r.Handle("/statistics/analyze", limited(h.AnalyzeStatistics)).Methods(http.MethodPost)
	r.Handle("/profit/breakeven", limited(h.Breakeven)).Methods(http.MethodPost)
	r.Handle("/date/days", limited(h.DaysBetween)).Methods(http.MethodPost)
	r.Handle("/history", limited(h.History)).Methods(http.MethodGet)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return r
}
