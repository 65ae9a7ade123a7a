/*
handlers.go - HTTP API handlers

ERROR HANDLING:
  Errors are returned as JSON with an HTTP status:
  - 400: Missing or invalid input
  - 404: Unknown calculator, range domain, scenario or profile
  - 422: Undefined computation, or a report that fails its checks
  - 500: Store, cache or rendering failures
*/
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rgehrsitz/sgfin/internal/cache"
	"github.com/rgehrsitz/sgfin/internal/calculation"
	"github.com/rgehrsitz/sgfin/internal/config"
	"github.com/rgehrsitz/sgfin/internal/domain"
	"github.com/rgehrsitz/sgfin/internal/output"
	"github.com/rgehrsitz/sgfin/internal/report"
	"github.com/rgehrsitz/sgfin/internal/store"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

var contentTypes = map[string]string{
	"pdf":  "application/pdf",
	"json": "application/json",
	"csv":  "text/csv; charset=utf-8",
	"html": "text/html; charset=utf-8",
	"txt":  "text/plain; charset=utf-8",
}

// Handler holds the dependencies of the HTTP handlers.
type Handler struct {
	Engine   *calculation.CalculationEngine
	Parser   *config.InputParser
	Store    store.Store
	Cache    cache.Cache
	CacheTTL time.Duration
	Logger   *zap.Logger

	// Preparer is used for reports when no profile has been saved.
	Preparer domain.Preparer
	// ReportFormat is used when a report request names no format.
	ReportFormat string

	builder *report.Builder
}

// NewHandler creates a handler. A nil cache disables caching and a nil
// logger discards logs.
func NewHandler(engine *calculation.CalculationEngine, parser *config.InputParser, st store.Store, c cache.Cache, logger *zap.Logger) *Handler {
	if c == nil {
		c = cache.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Engine:       engine,
		Parser:       parser,
		Store:        st,
		Cache:        c,
		CacheTTL:     time.Hour,
		Logger:       logger,
		ReportFormat: "pdf",
		builder:      report.NewBuilder(engine, parser),
	}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListCalculators returns every calculator with its input schema.
func (h *Handler) ListCalculators(w http.ResponseWriter, r *http.Request) {
	ids := domain.AllCalculators()
	dtos := make([]CalculatorDTO, len(ids))
	for i, id := range ids {
		dtos[i] = CalculatorDTO{ID: id, Title: id.Title(), Fields: domain.Schema(id)}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Calculate runs one calculator on a flat JSON object of form values.
// Responses are cached by calculator and parsed input.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseCalculatorID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Unknown calculator", err)
		return
	}

	var body map[string]json.RawMessage
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	values := make(map[string]string, len(body))
	for k, raw := range body {
		v, err := scalarString(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid field value", Details: err.Error(), Field: k})
			return
		}
		values[k] = v
	}

	in, err := h.Parser.ParseCalculatorInput(id, values)
	if err != nil {
		writeCalculationError(w, err)
		return
	}

	key, err := cache.Key(id, in)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to derive cache key", err)
		return
	}
	if cached, ok, err := h.Cache.Get(r.Context(), key); err != nil {
		h.Logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		w.Header().Set("X-Cache", "HIT")
		writeRawJSON(w, http.StatusOK, cached)
		return
	}

	result, err := h.Engine.Calculate(id, in)
	if err != nil {
		writeCalculationError(w, err)
		return
	}

	resp := CalculateResponse{
		Calculator: id,
		Title:      id.Title(),
		Input:      in,
		Result:     result,
		Fields:     output.FormatFields(result.Fields()),
	}
	if br, ok := result.(domain.BracketedResult); ok {
		resp.Breakdown = br.Lines()
	}
	if f, ok := output.Headline(result); ok {
		resp.Headline = &output.FormattedField{Field: f, Formatted: output.FormatField(f)}
	}

	data, err := json.Marshal(resp)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode result", err)
		return
	}
	if err := h.Cache.Set(r.Context(), key, data, h.CacheTTL); err != nil {
		h.Logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	w.Header().Set("X-Cache", "MISS")
	writeRawJSON(w, http.StatusOK, data)
}

// ValidateValue checks one value against a named range domain.
func (h *Handler) ValidateValue(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	registry := h.Parser.Validator().Registry()
	if !registry.Has(req.Domain) {
		writeError(w, http.StatusNotFound, "Unknown validation domain", fmt.Errorf("%q", req.Domain))
		return
	}
	s, err := scalarString(req.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid value", err)
		return
	}
	v, err := config.ParseAmount(s)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Value must be a number", err)
		return
	}
	writeJSON(w, http.StatusOK, registry.Validate(req.Domain, v))
}

// GetProfile returns the saved preparer profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.Store.GetProfile(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Profile not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get profile", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// SaveProfile replaces the preparer profile.
func (h *Handler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var p domain.Preparer
	if err := decodeBody(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if strings.TrimSpace(p.Name) == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Name is required", Field: "name"})
		return
	}
	if err := h.Store.SaveProfile(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save profile", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ListScenarios returns every saved scenario.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	list, err := h.Store.ListScenarios(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list scenarios", err)
		return
	}
	if list == nil {
		list = []*domain.Scenario{}
	}
	writeJSON(w, http.StatusOK, list)
}

// SaveScenario creates a scenario, or updates it when the body carries an
// existing id. Every calculation must parse.
func (h *Handler) SaveScenario(w http.ResponseWriter, r *http.Request) {
	var s domain.Scenario
	if err := decodeBody(w, r, &s); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := store.CheckScenario(&s); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scenario", err)
		return
	}
	if err := h.Parser.ValidateConfiguration(&s); err != nil {
		writeCalculationError(w, err)
		return
	}

	status := http.StatusCreated
	if s.ID != "" {
		if _, err := h.Store.GetScenario(r.Context(), s.ID); err == nil {
			status = http.StatusOK
		}
	}
	saved, err := h.Store.SaveScenario(r.Context(), &s)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save scenario", err)
		return
	}
	writeJSON(w, status, saved)
}

// GetScenario returns one scenario.
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	s, err := h.Store.GetScenario(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Scenario not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get scenario", err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// DeleteScenario removes one scenario.
func (h *Handler) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeleteScenario(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Scenario not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete scenario", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Report builds a report from the scenario in the body, rejects it when its
// checks find errors and otherwise renders it in the requested format.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = h.ReportFormat
	}
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		writeError(w, http.StatusBadRequest, "Unsupported format", fmt.Errorf("%q", format))
		return
	}

	var s domain.Scenario
	if err := decodeBody(w, r, &s); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	preparer, err := h.preparer(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get profile", err)
		return
	}

	rep, err := h.builder.Build(&s, preparer)
	if err != nil {
		writeCalculationError(w, err)
		return
	}

	summary := report.Validate(rep)
	if !summary.IsValid {
		writeJSON(w, http.StatusUnprocessableEntity, ReportRejected{Error: summary.Message(), Summary: summary})
		return
	}
	for _, warning := range summary.Warnings {
		h.Logger.Debug("report warning", zap.String("report_id", rep.ID), zap.String("warning", warning))
	}

	data, err := formatter.Format(rep)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to render report", err)
		return
	}

	ext := output.Extension(formatter)
	ct, ok := contentTypes[ext]
	if !ok {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, rep.ID, ext))
	w.Header().Set("X-Report-Id", rep.ID)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) preparer(r *http.Request) (domain.Preparer, error) {
	p, err := h.Store.GetProfile(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		return h.Preparer, nil
	}
	return p, err
}

// =============================================================================
// HELPERS
// =============================================================================

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	return dec.Decode(v)
}

// scalarString renders a JSON string, number, boolean or null as a form
// value.
func scalarString(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	switch raw[0] {
	case '"':
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return "", err
		}
		return fmt.Sprint(b), nil
	case '{', '[':
		return "", fmt.Errorf("expected a number, string or boolean")
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeRawJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeCalculationError maps invalid input to 400 and undefined results to
// 422.
func writeCalculationError(w http.ResponseWriter, err error) {
	ce, ok := domain.AsCalculationError(err)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid request", err)
		return
	}
	status := http.StatusBadRequest
	message := "Missing or invalid field"
	if ce.Kind == domain.UndefinedComputation {
		status = http.StatusUnprocessableEntity
		message = "Undefined computation"
	}
	writeJSON(w, status, ErrorResponse{Error: message, Details: err.Error(), Field: ce.Field})
}
