package api

import (
	"errors"
	"net/http"

	"github.com/edututor-ai/backend/internal/analytics"
)

// ── Request / Response types ────────────────────────────────────────────────

type SendEncouragementRequest struct {
	EducatorID string `json:"educator_id" example:"20260901120000000000"`
	StudentID  string `json:"student_id" example:"20260901130000000000"`
	Message    string `json:"message" example:"Great progress this week!"`
}

func (r *SendEncouragementRequest) Validate() error {
	if r.EducatorID == "" {
		return errors.New("educator_id is required")
	}
	if r.StudentID == "" {
		return errors.New("student_id is required")
	}
	if r.Message == "" {
		return errors.New("message is required")
	}
	return nil
}

type SendEncouragementResponse struct {
	IsOk    bool           `json:"isOk"`
	Created map[string]any `json:"created"`
}

type EncouragementHistoryResponse struct {
	IsOk           bool                          `json:"isOk"`
	Encouragements []analytics.SentEncouragement `json:"encouragements"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// sendEncouragement records an educator's message to a student.
// @Summary      Send an encouragement
// @Tags         Encouragements
// @Accept       json
// @Produce      json
// @Param        body  body      SendEncouragementRequest  true  "Message to send"
// @Success      201   {object}  SendEncouragementResponse
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]string
// @Router       /api/encouragements [post]
func (h *Handler) sendEncouragement(w http.ResponseWriter, r *http.Request) {
	var req SendEncouragementRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	enc, err := h.assessments.SendEncouragement(req.EducatorID, req.StudentID, req.Message)
	if h.handleStoreError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, SendEncouragementResponse{IsOk: true, Created: enc.Record()})
}

// encouragementHistory lists an educator's ten most recent messages.
// @Summary      Encouragement history
// @Description  Most recent first, limited to ten, with the student name resolved.
// @Tags         Encouragements
// @Produce      json
// @Param        educatorID  path      string  true  "Educator ID"
// @Success      200         {object}  EncouragementHistoryResponse
// @Failure      500         {object}  map[string]string
// @Router       /api/encouragements/{educatorID} [get]
func (h *Handler) encouragementHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.analytics.EncouragementHistory(r.PathValue("educatorID"))
	if h.handleStoreError(w, err) {
		return
	}
	if history == nil {
		history = []analytics.SentEncouragement{}
	}
	respondJSON(w, http.StatusOK, EncouragementHistoryResponse{IsOk: true, Encouragements: history})
}
