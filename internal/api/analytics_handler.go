package api

import (
	"net/http"

	"github.com/edututor-ai/backend/internal/analytics"
)

// ── Handlers ────────────────────────────────────────────────────────────────

// overview reports class-wide headline numbers.
// @Summary      Class overview
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  analytics.ClassOverview
// @Failure      500  {object}  map[string]string
// @Router       /api/analytics/overview [get]
func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	view, err := h.analytics.Overview()
	if h.handleStoreError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// subjectAverages groups quiz scores by topic.
// @Summary      Averages per subject
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}   analytics.GroupStat
// @Failure      500  {object}  map[string]string
// @Router       /api/analytics/subjects [get]
func (h *Handler) subjectAverages(w http.ResponseWriter, r *http.Request) {
	h.groupStats(w, h.analytics.SubjectAverages)
}

// difficultyAverages groups quiz scores by difficulty.
// @Summary      Averages per difficulty
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}   analytics.GroupStat
// @Failure      500  {object}  map[string]string
// @Router       /api/analytics/difficulty [get]
func (h *Handler) difficultyAverages(w http.ResponseWriter, r *http.Request) {
	h.groupStats(w, h.analytics.DifficultyAverages)
}

func (h *Handler) groupStats(w http.ResponseWriter, view func() ([]analytics.GroupStat, error)) {
	stats, err := view()
	if h.handleStoreError(w, err) {
		return
	}
	if stats == nil {
		stats = []analytics.GroupStat{}
	}
	respondJSON(w, http.StatusOK, stats)
}

// leaderboard ranks students by average score.
// @Summary      Leaderboard
// @Description  Students with at least one quiz, best average first, top ten.
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}   analytics.StudentRank
// @Failure      500  {object}  map[string]string
// @Router       /api/analytics/leaderboard [get]
func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	h.ranks(w, h.analytics.Leaderboard)
}

// mostActive ranks all students by quiz count.
// @Summary      Most active students
// @Description  Every student ranked by quiz count, top five. Zero counts included.
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}   analytics.StudentRank
// @Failure      500  {object}  map[string]string
// @Router       /api/analytics/most-active [get]
func (h *Handler) mostActive(w http.ResponseWriter, r *http.Request) {
	h.ranks(w, h.analytics.MostActive)
}

func (h *Handler) ranks(w http.ResponseWriter, view func() ([]analytics.StudentRank, error)) {
	ranks, err := view()
	if h.handleStoreError(w, err) {
		return
	}
	if ranks == nil {
		ranks = []analytics.StudentRank{}
	}
	respondJSON(w, http.StatusOK, ranks)
}

// subjectChampions names the best student per subject.
// @Summary      Subject champions
// @Description  Each student competes only in their single best subject.
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}   analytics.Champion
// @Failure      500  {object}  map[string]string
// @Router       /api/analytics/champions [get]
func (h *Handler) subjectChampions(w http.ResponseWriter, r *http.Request) {
	champions, err := h.analytics.SubjectChampions()
	if h.handleStoreError(w, err) {
		return
	}
	if champions == nil {
		champions = []analytics.Champion{}
	}
	respondJSON(w, http.StatusOK, champions)
}

// lowPerformers lists students averaging below sixty.
// @Summary      Low performers
// @Description  Students with at least one quiz and an average strictly below 60.
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}   analytics.LowPerformer
// @Failure      500  {object}  map[string]string
// @Router       /api/analytics/low-performers [get]
func (h *Handler) lowPerformers(w http.ResponseWriter, r *http.Request) {
	low, err := h.analytics.LowPerformers()
	if h.handleStoreError(w, err) {
		return
	}
	if low == nil {
		low = []analytics.LowPerformer{}
	}
	respondJSON(w, http.StatusOK, low)
}

// studentSummary reports one student's quiz history headline.
// @Summary      Student summary
// @Tags         Analytics
// @Produce      json
// @Param        userID  path      string  true  "Student user ID"
// @Success      200     {object}  analytics.StudentSummary
// @Failure      500     {object}  map[string]string
// @Router       /api/analytics/students/{userID} [get]
func (h *Handler) studentSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analytics.StudentSummary(r.PathValue("userID"))
	if h.handleStoreError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
