package api

import (
	"net/http"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateRecordResponse struct {
	IsOk    bool           `json:"isOk"`
	Created map[string]any `json:"created"`
}

type SyncGoogleResponse struct {
	IsOk    bool `json:"isOk"`
	Courses any  `json:"courses"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getData returns every stored record in one flattened array.
// @Summary      List all records
// @Description  Accounts, quiz results and encouragements concatenated into one array.
// @Tags         Records
// @Produce      json
// @Success      200  {array}   map[string]any
// @Failure      500  {object}  map[string]string
// @Router       /api/data [get]
func (h *Handler) getData(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.All()
	if h.handleStoreError(w, err) {
		return
	}
	if records == nil {
		records = []map[string]any{}
	}
	respondJSON(w, http.StatusOK, records)
}

// createRecord classifies an arbitrary JSON object by shape and stores it.
// @Summary      Create a record
// @Description  The record's collection is inferred from which keys it carries.
// @Tags         Records
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "Record to store"
// @Success      201   {object}  CreateRecordResponse
// @Failure      400   {object}  map[string]any  "No JSON body"
// @Failure      500   {object}  map[string]string
// @Router       /api/create [post]
func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	var record map[string]any
	if !decodeJSON(w, r, &record) {
		return
	}
	if record == nil {
		respondError(w, http.StatusBadRequest, "No JSON body")
		return
	}

	created, _, err := h.records.Create(record)
	if h.handleStoreError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, CreateRecordResponse{IsOk: true, Created: created})
}

// syncGoogle returns the external course catalog.
// @Summary      Sync Google Classroom courses
// @Description  Returns the course list from the (mocked) Classroom catalog.
// @Tags         Records
// @Produce      json
// @Success      200  {object}  SyncGoogleResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/sync_google [post]
func (h *Handler) syncGoogle(w http.ResponseWriter, r *http.Request) {
	courses, err := h.catalog.Courses()
	if err != nil {
		h.logger.Error("catalog error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, SyncGoogleResponse{IsOk: true, Courses: courses})
}
