package quiz

import (
	"errors"
	"math/rand"
	"time"

	"github.com/edututor-ai/backend/internal/displaydate"
	"github.com/edututor-ai/backend/internal/id"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

var (
	// ErrNoQuestions means no pool exists for the requested topic and
	// difficulty. This is a user-facing error, not an empty quiz.
	ErrNoQuestions = errors.New("no questions available for this topic and difficulty")

	// ErrIncomplete rejects a submission with unanswered questions.
	ErrIncomplete = errors.New("all questions must be answered")
)

// Unanswered marks an answer slot the student has not filled in.
const Unanswered = -1

type Question struct {
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

// Quiz is a transient, ungraded quiz instance. It lives in working memory
// only and is discarded once graded; nothing about it is persisted except
// the Result produced by Grade.
type Quiz struct {
	ID         string
	Topic      string
	Difficulty Difficulty
	Questions  []Question
	StartedAt  time.Time
}

// Result is the graded outcome of a submitted quiz, in the shape the
// record store persists.
type Result struct {
	QuizID         string
	UserID         string
	Topic          string
	Difficulty     Difficulty
	Score          float64
	CorrectAnswers int
	TotalQuestions int
	QuizDate       string
	Feedback       string
}

// Generate samples min(count, pool size) questions for the topic and
// difficulty without replacement: repeatedly pick a uniformly random
// remaining question and remove it from the candidate set. A pool smaller
// than count yields a shorter quiz, which callers report as a shortfall.
func Generate(topic string, difficulty Difficulty, count int) (*Quiz, error) {
	pool := pools[topic][difficulty]
	if len(pool) == 0 {
		return nil, ErrNoQuestions
	}

	remaining := make([]Question, len(pool))
	copy(remaining, pool)

	n := count
	if n > len(remaining) {
		n = len(remaining)
	}

	selected := make([]Question, 0, n)
	for i := 0; i < n; i++ {
		j := rand.Intn(len(remaining))
		selected = append(selected, remaining[j])
		remaining = append(remaining[:j], remaining[j+1:]...)
	}

	return &Quiz{
		ID:         id.GenerateID(),
		Topic:      topic,
		Difficulty: difficulty,
		Questions:  selected,
		StartedAt:  time.Now(),
	}, nil
}

// Shortfall reports whether the quiz came up short of the requested count.
func (q *Quiz) Shortfall(requested int) bool {
	return len(q.Questions) < requested
}

// Grade scores a completed attempt. Every answer slot must be filled;
// otherwise the submission is rejected and no result is produced.
func (q *Quiz) Grade(userID string, answers []int, completedAt time.Time) (*Result, error) {
	if len(answers) != len(q.Questions) {
		return nil, ErrIncomplete
	}
	for _, a := range answers {
		if a == Unanswered || a < 0 {
			return nil, ErrIncomplete
		}
	}

	correct := 0
	for i, question := range q.Questions {
		if answers[i] == question.Correct {
			correct++
		}
	}
	score := float64(correct) / float64(len(q.Questions)) * 100

	return &Result{
		QuizID:         q.ID,
		UserID:         userID,
		Topic:          q.Topic,
		Difficulty:     q.Difficulty,
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: len(q.Questions),
		QuizDate:       displaydate.Format(completedAt),
		Feedback:       Feedback(score),
	}, nil
}

// Feedback maps a percentage score to its display feedback. Both
// boundaries are inclusive: exactly 80 is "Excellent!", exactly 60 is
// "Good job!".
func Feedback(score float64) string {
	switch {
	case score >= 80:
		return "Excellent!"
	case score >= 60:
		return "Good job!"
	default:
		return "Keep practicing!"
	}
}

func (r *Result) Record() map[string]any {
	return map[string]any{
		"quiz_id":         r.QuizID,
		"user_id":         r.UserID,
		"topic":           r.Topic,
		"difficulty":      string(r.Difficulty),
		"score":           r.Score,
		"correct_answers": r.CorrectAnswers,
		"total_questions": r.TotalQuestions,
		"quiz_date":       r.QuizDate,
		"feedback":        r.Feedback,
	}
}
