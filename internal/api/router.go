// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Records
	mux.HandleFunc("GET /api/data", h.getData)
	mux.HandleFunc("POST /api/create", h.createRecord)
	mux.HandleFunc("POST /api/sync_google", h.syncGoogle)

	// Accounts
	mux.HandleFunc("POST /api/register", h.register)
	mux.HandleFunc("POST /api/login", h.login)

	// Quizzes
	mux.HandleFunc("POST /api/quizzes", h.generateQuiz)
	mux.HandleFunc("POST /api/quizzes/{quizID}/submit", h.submitQuiz)

	// Encouragements
	mux.HandleFunc("POST /api/encouragements", h.sendEncouragement)
	mux.HandleFunc("GET /api/encouragements/{educatorID}", h.encouragementHistory)

	// Analytics
	mux.HandleFunc("GET /api/analytics/overview", h.overview)
	mux.HandleFunc("GET /api/analytics/subjects", h.subjectAverages)
	mux.HandleFunc("GET /api/analytics/difficulty", h.difficultyAverages)
	mux.HandleFunc("GET /api/analytics/leaderboard", h.leaderboard)
	mux.HandleFunc("GET /api/analytics/most-active", h.mostActive)
	mux.HandleFunc("GET /api/analytics/champions", h.subjectChampions)
	mux.HandleFunc("GET /api/analytics/low-performers", h.lowPerformers)
	mux.HandleFunc("GET /api/analytics/students/{userID}", h.studentSummary)
}
