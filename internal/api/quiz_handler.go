package api

import (
	"errors"
	"net/http"

	"github.com/edututor-ai/backend/internal/domain/quiz"
	"github.com/edututor-ai/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type GenerateQuizRequest struct {
	Topic        string `json:"topic" example:"Mathematics"`
	Difficulty   string `json:"difficulty" example:"Easy"`
	NumQuestions int    `json:"num_questions" example:"5"`
}

func (r *GenerateQuizRequest) Validate() error {
	if r.Topic == "" {
		return errors.New("topic is required")
	}
	if r.Difficulty == "" {
		return errors.New("difficulty is required")
	}
	if r.NumQuestions <= 0 {
		return errors.New("num_questions must be positive")
	}
	return nil
}

// QuizQuestion is a question as shown to the student. The correct
// option index stays server side until the quiz is graded.
type QuizQuestion struct {
	Question string   `json:"question" example:"What is 12 × 8?"`
	Options  []string `json:"options"`
}

type GenerateQuizResponse struct {
	IsOk       bool           `json:"isOk"`
	QuizID     string         `json:"quiz_id"`
	Topic      string         `json:"topic"`
	Difficulty string         `json:"difficulty"`
	Questions  []QuizQuestion `json:"questions"`
	Message    string         `json:"message,omitempty"`
}

type SubmitQuizRequest struct {
	UserID  string `json:"user_id" example:"20260901120000000000"`
	Answers []int  `json:"answers"`
}

func (r *SubmitQuizRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user_id is required")
	}
	if len(r.Answers) == 0 {
		return errors.New("answers are required")
	}
	return nil
}

type SubmitQuizResponse struct {
	IsOk           bool    `json:"isOk"`
	QuizID         string  `json:"quiz_id"`
	Score          float64 `json:"score"`
	CorrectAnswers int     `json:"correct_answers"`
	TotalQuestions int     `json:"total_questions"`
	Feedback       string  `json:"feedback"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// generateQuiz samples a quiz and parks it until submission.
// @Summary      Generate a quiz
// @Description  Samples questions without replacement for a topic and difficulty.
// @Tags         Quizzes
// @Accept       json
// @Produce      json
// @Param        body  body      GenerateQuizRequest  true  "Quiz parameters"
// @Success      201   {object}  GenerateQuizResponse
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any  "no questions for topic/difficulty"
// @Failure      500   {object}  map[string]string
// @Router       /api/quizzes [post]
func (h *Handler) generateQuiz(w http.ResponseWriter, r *http.Request) {
	var req GenerateQuizRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q, shortfall, err := h.assessments.GenerateQuiz(req.Topic, quiz.Difficulty(req.Difficulty), req.NumQuestions)
	if errors.Is(err, quiz.ErrNoQuestions) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	if h.handleStoreError(w, err) {
		return
	}

	resp := GenerateQuizResponse{
		IsOk:       true,
		QuizID:     q.ID,
		Topic:      q.Topic,
		Difficulty: string(q.Difficulty),
		Questions:  make([]QuizQuestion, len(q.Questions)),
	}
	for i, question := range q.Questions {
		resp.Questions[i] = QuizQuestion{Question: question.Prompt, Options: question.Options}
	}
	if shortfall {
		resp.Message = "fewer questions available than requested"
	}
	respondJSON(w, http.StatusCreated, resp)
}

// submitQuiz grades a pending quiz and persists the result.
// @Summary      Submit quiz answers
// @Description  Grades the quiz, stores the result and discards the pending quiz.
// @Tags         Quizzes
// @Accept       json
// @Produce      json
// @Param        quizID  path      string             true  "Quiz ID"
// @Param        body    body      SubmitQuizRequest  true  "Answers"
// @Success      200     {object}  SubmitQuizResponse
// @Failure      400     {object}  map[string]any  "unanswered questions"
// @Failure      404     {object}  map[string]any  "quiz not found"
// @Failure      500     {object}  map[string]string
// @Router       /api/quizzes/{quizID}/submit [post]
func (h *Handler) submitQuiz(w http.ResponseWriter, r *http.Request) {
	quizID := r.PathValue("quizID")

	var req SubmitQuizRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.assessments.SubmitQuiz(quizID, req.UserID, req.Answers)
	switch {
	case errors.Is(err, service.ErrQuizNotFound):
		respondError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, quiz.ErrIncomplete):
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h.handleStoreError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, SubmitQuizResponse{
		IsOk:           true,
		QuizID:         result.QuizID,
		Score:          result.Score,
		CorrectAnswers: result.CorrectAnswers,
		TotalQuestions: result.TotalQuestions,
		Feedback:       result.Feedback,
	})
}
