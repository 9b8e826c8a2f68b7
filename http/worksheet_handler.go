package http

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"fxba/domain"
	"fxba/service"
)

type WorksheetHandler struct {
	service *service.WorksheetService
}

func NewWorksheetHandler(service *service.WorksheetService) *WorksheetHandler {
	return &WorksheetHandler{service: service}
}

// statusFor maps calculation failures to 422 and anything else the
// service rejects to 400.
func statusFor(err error) int {
	var kind domain.ErrorKind
	if errors.As(err, &kind) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func isJSON(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return true
	}
	mt, _, err := mime.ParseMediaType(ct)
	return err == nil && mt == "application/json"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// calculate decodes a POSTed JSON body into In, runs call and writes the
// result.
func calculate[In, Out any](
	w http.ResponseWriter,
	r *http.Request,
	call func(context.Context, In) (Out, error),
) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !isJSON(r) {
		http.Error(w, "content type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input In
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := call(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *WorksheetHandler) SolveTVM(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.SolveTVM)
}

func (h *WorksheetHandler) Amortize(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.Amortize)
}

func (h *WorksheetHandler) AnalyzeCashFlows(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.AnalyzeCashFlows)
}

func (h *WorksheetHandler) CalculateBond(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.CalculateBond)
}

func (h *WorksheetHandler) DepreciationSchedule(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.DepreciationSchedule)
}

func (h *WorksheetHandler) AnalyzeStatistics(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.AnalyzeStatistics)
}

func (h *WorksheetHandler) Breakeven(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.Breakeven)
}

func (h *WorksheetHandler) DaysBetween(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.DaysBetween)
}

// History lists recent calculations. ?limit=N bounds the list.
func (h *WorksheetHandler) History(w http.ResponseWriter, r *http.Request) {

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

	records, err := h.service.History(limit)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, records)
}
