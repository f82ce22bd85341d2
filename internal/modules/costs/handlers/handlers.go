// Package handlers provides HTTP handlers for cost computations.
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/psyperinat/psycost/internal/api"
	"github.com/psyperinat/psycost/internal/modules/births"
	"github.com/psyperinat/psycost/internal/modules/costs"
	"github.com/psyperinat/psycost/internal/modules/parameters"
)

// maxBodyBytes bounds request bodies; a full override vector is well under this.
const maxBodyBytes = 1 << 20

// Handler handles cost HTTP requests
type Handler struct {
	service *costs.Service
	log     zerolog.Logger
}

// NewHandler creates a new cost handler
func NewHandler(service *costs.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "costs").Logger(),
	}
}

// DisorderFlags enables disorder groups. Omitted flags default to enabled.
type DisorderFlags struct {
	Depression *bool `json:"depression,omitempty"`
	Anxiety    *bool `json:"anxiety,omitempty"`
	Psychosis  *bool `json:"psychosis,omitempty"`
}

// Selection converts the flags to an engine selection.
func (f *DisorderFlags) Selection() costs.Selection {
	sel := costs.AllDisorders()
	if f == nil {
		return sel
	}
	if f.Depression != nil {
		sel.Depression = *f.Depression
	}
	if f.Anxiety != nil {
		sel.Anxiety = *f.Anxiety
	}
	if f.Psychosis != nil {
		sel.Psychosis = *f.Psychosis
	}
	return sel
}

// ComputeRequest is the body of POST /api/costs and /api/costs/sensitivity.
type ComputeRequest struct {
	Overrides []float64          `json:"overrides,omitempty"`
	Changes   map[string]float64 `json:"changes,omitempty"`
	Births    *float64           `json:"births,omitempty"`
	Territory string             `json:"territory,omitempty"`
	Disorders *DisorderFlags     `json:"disorders,omitempty"`
}

func (req ComputeRequest) toService() costs.Request {
	return costs.Request{
		Overrides: req.Overrides,
		Changes:   req.Changes,
		Births:    req.Births,
		Territory: strings.TrimSpace(req.Territory),
		Selection: req.Disorders.Selection(),
	}
}

// SweepRequest is the body of POST /api/costs/sweep.
type SweepRequest struct {
	ComputeRequest
	Parameter string `json:"parameter"`
	Points    int    `json:"points"`
}

// ComputeResponse carries a cost breakdown and any non-fatal warnings.
type ComputeResponse struct {
	Result   *costs.Result `json:"result"`
	Warnings []string      `json:"warnings,omitempty"`
}

// SensitivityResponse is the scalar sensitivity entry point's output.
type SensitivityResponse struct {
	Total float64 `json:"total"`
}

// SweepResponse lists the sweep evaluations.
type SweepResponse struct {
	Parameter string             `json:"parameter"`
	Points    []costs.SweepPoint `json:"points"`
}

// HandleCompute handles POST /api/costs
func (h *Handler) HandleCompute(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if err := decodeBody(r, &req); err != nil {
		h.log.Warn().Err(err).Msg("Failed to decode request body")
		api.Error(w, r, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	result, err := h.service.Compute(r.Context(), req.toService())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	resp := ComputeResponse{Result: result}
	if err := result.Repartition.Err(); err != nil {
		resp.Warnings = append(resp.Warnings, err.Error())
	}

	envelope := api.NewEnvelope(resp)
	envelope.Metadata.RunID = uuid.New().String()
	api.Write(w, r, http.StatusOK, envelope, h.log)
}

// HandleSensitivity handles POST /api/costs/sensitivity
func (h *Handler) HandleSensitivity(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if err := decodeBody(r, &req); err != nil {
		h.log.Warn().Err(err).Msg("Failed to decode request body")
		api.Error(w, r, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	total, err := h.service.SensitivityTotal(req.toService())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	api.Write(w, r, http.StatusOK, api.NewEnvelope(SensitivityResponse{Total: total}), h.log)
}

// HandleSweep handles POST /api/costs/sweep
func (h *Handler) HandleSweep(w http.ResponseWriter, r *http.Request) {
	var req SweepRequest
	if err := decodeBody(r, &req); err != nil {
		h.log.Warn().Err(err).Msg("Failed to decode request body")
		api.Error(w, r, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if req.Parameter == "" {
		api.Error(w, r, http.StatusBadRequest, "parameter is required", h.log)
		return
	}

	points, err := h.service.Sweep(req.toService(), req.Parameter, req.Points)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	envelope := api.NewEnvelope(SweepResponse{Parameter: req.Parameter, Points: points})
	envelope.Metadata.RunID = uuid.New().String()
	api.Write(w, r, http.StatusOK, envelope, h.log)
}

// HandleParameters handles GET /api/parameters
func (h *Handler) HandleParameters(w http.ResponseWriter, r *http.Request) {
	catalog := h.service.Catalog()

	raw := r.URL.Query().Get("category")
	if raw == "" {
		api.Write(w, r, http.StatusOK, api.NewEnvelope(catalog.Parameters()), h.log)
		return
	}

	category := parameters.Category(strings.ToLower(raw))
	if !category.Valid() {
		api.Error(w, r, http.StatusBadRequest, fmt.Sprintf("unknown category: %s", raw), h.log)
		return
	}
	api.Write(w, r, http.StatusOK, api.NewEnvelope(catalog.ByCategory(category)), h.log)
}

// HandleCategories handles GET /api/parameters/categories
func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	api.Write(w, r, http.StatusOK, api.NewEnvelope(parameters.Categories), h.log)
}

// statusFor maps engine and lookup errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, parameters.ErrUnknownParameter),
		errors.Is(err, parameters.ErrParameterCountMismatch),
		errors.Is(err, parameters.ErrInvalidParameterValue),
		errors.Is(err, costs.ErrInvalidBirthsCount),
		errors.Is(err, costs.ErrInvalidSweep):
		return http.StatusBadRequest
	case errors.Is(err, costs.ErrNonFiniteResult):
		return http.StatusUnprocessableEntity
	case errors.Is(err, births.ErrTerritoryNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", r.URL.Path).Msg("Cost computation failed")
		api.Error(w, r, status, "cost computation failed", h.log)
		return
	}

	h.log.Debug().Err(err).Int("status", status).Msg("Rejected cost request")
	api.Error(w, r, status, err.Error(), h.log)
}

// decodeBody reads a JSON or MessagePack body into v. An empty body leaves v
// at its zero value.
func decodeBody(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return err
	}
	if len(body) > maxBodyBytes {
		return fmt.Errorf("request body exceeds %d bytes", maxBodyBytes)
	}
	if len(body) == 0 {
		return nil
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), api.ContentTypeMsgpack) {
		dec := msgpack.NewDecoder(bytes.NewReader(body))
		dec.SetCustomStructTag("json")
		return dec.Decode(v)
	}
	return json.Unmarshal(body, v)
}
