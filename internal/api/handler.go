// internal/api/handler.go
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/edututor-ai/backend/internal/analytics"
	"github.com/edututor-ai/backend/internal/classroom"
	"github.com/edututor-ai/backend/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	records     *service.RecordService
	assessments *service.AssessmentService
	analytics   *analytics.Engine
	catalog     classroom.Catalog
	logger      *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(
	records *service.RecordService,
	assessments *service.AssessmentService,
	engine *analytics.Engine,
	catalog classroom.Catalog,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		records:     records,
		assessments: assessments,
		analytics:   engine,
		catalog:     catalog,
		logger:      logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes the {isOk:false, message} error shape every
// endpoint shares.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]any{"isOk": false, "message": message})
}

// decodeJSON decodes the request body into v. On failure it writes a
// 400 and returns false; the caller should return immediately.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil {
		respondError(w, http.StatusBadRequest, "No JSON body")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "No JSON body")
		return false
	}
	return true
}

// validator is implemented by request types that check their own fields.
type validator interface {
	Validate() error
}

// decodeAndValidate decodes the body and runs the request's own
// validation. Any failure writes a 400 and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleStoreError writes a 500 for unexpected store failures. Returns
// true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	h.logger.Error("store error", "error", err)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}
