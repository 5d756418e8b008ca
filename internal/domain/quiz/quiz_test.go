package quiz_test

import (
	"errors"
	"testing"
	"time"

	"github.com/edututor-ai/backend/internal/domain/quiz"
)

func TestGenerate_SamplingBounds(t *testing.T) {
	q, err := quiz.Generate("Mathematics", quiz.DifficultyEasy, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(q.Questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(q.Questions))
	}

	seen := make(map[string]bool)
	for _, question := range q.Questions {
		if seen[question.Prompt] {
			t.Errorf("question repeated within one quiz: %q", question.Prompt)
		}
		seen[question.Prompt] = true
	}
}

func TestGenerate_PoolSmallerThanRequested(t *testing.T) {
	q, err := quiz.Generate("Science", quiz.DifficultyHard, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Pools hold 15 questions; never return more than exist.
	if len(q.Questions) != 15 {
		t.Errorf("expected 15 questions (full pool), got %d", len(q.Questions))
	}
	if !q.Shortfall(50) {
		t.Error("expected shortfall to be reported for an oversized request")
	}
	if q.Shortfall(15) {
		t.Error("expected no shortfall when the pool covers the request")
	}
}

func TestGenerate_UnknownTopic(t *testing.T) {
	_, err := quiz.Generate("Astrology", quiz.DifficultyEasy, 5)
	if !errors.Is(err, quiz.ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestGenerate_UnknownDifficulty(t *testing.T) {
	_, err := quiz.Generate("Mathematics", quiz.Difficulty("Impossible"), 5)
	if !errors.Is(err, quiz.ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestGenerate_RandomizesSelection(t *testing.T) {
	first, err := quiz.Generate("History", quiz.DifficultyMedium, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// With 10 of 15 questions sampled, ten runs producing the identical
	// sequence would mean sampling is not random.
	for i := 0; i < 10; i++ {
		next, err := quiz.Generate("History", quiz.DifficultyMedium, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !samePrompts(first.Questions, next.Questions) {
			return
		}
	}
	t.Error("expected sampled questions to vary across quizzes")
}

func samePrompts(a, b []quiz.Question) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Prompt != b[i].Prompt {
			return false
		}
	}
	return true
}

func fixedQuiz(n int) *quiz.Quiz {
	questions := make([]quiz.Question, n)
	for i := range questions {
		questions[i] = quiz.Question{
			Prompt:  "Q" + string(rune('A'+i)),
			Options: []string{"a", "b", "c", "d"},
			Correct: i % 4,
		}
	}
	return &quiz.Quiz{
		ID:         "q-test",
		Topic:      "Mathematics",
		Difficulty: quiz.DifficultyEasy,
		Questions:  questions,
	}
}

func TestGrade_ScoringAndFeedback(t *testing.T) {
	tests := []struct {
		name         string
		correctCount int
		wantScore    float64
		wantFeedback string
	}{
		{"4 of 5 is excellent (80 is inclusive)", 4, 80.0, "Excellent!"},
		{"3 of 5 is good (60 is inclusive)", 3, 60.0, "Good job!"},
		{"2 of 5 needs practice", 2, 40.0, "Keep practicing!"},
		{"perfect score", 5, 100.0, "Excellent!"},
		{"zero score", 0, 0.0, "Keep practicing!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := fixedQuiz(5)
			answers := make([]int, 5)
			for i := range answers {
				if i < tt.correctCount {
					answers[i] = q.Questions[i].Correct
				} else {
					answers[i] = (q.Questions[i].Correct + 1) % 4
				}
			}

			result, err := q.Grade("u1", answers, time.Now())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Score != tt.wantScore {
				t.Errorf("expected score %.1f, got %.1f", tt.wantScore, result.Score)
			}
			if result.Feedback != tt.wantFeedback {
				t.Errorf("expected feedback %q, got %q", tt.wantFeedback, result.Feedback)
			}
			if result.CorrectAnswers != tt.correctCount {
				t.Errorf("expected %d correct, got %d", tt.correctCount, result.CorrectAnswers)
			}
			if result.TotalQuestions != 5 {
				t.Errorf("expected total 5, got %d", result.TotalQuestions)
			}
		})
	}
}

func TestGrade_RejectsUnanswered(t *testing.T) {
	q := fixedQuiz(3)

	_, err := q.Grade("u1", []int{0, quiz.Unanswered, 2}, time.Now())
	if !errors.Is(err, quiz.ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}

	_, err = q.Grade("u1", []int{0, 1}, time.Now())
	if !errors.Is(err, quiz.ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete for short answer vector, got %v", err)
	}
}

func TestGrade_ResultRecord(t *testing.T) {
	q := fixedQuiz(4)
	answers := []int{
		q.Questions[0].Correct,
		q.Questions[1].Correct,
		q.Questions[2].Correct,
		(q.Questions[3].Correct + 1) % 4,
	}

	completedAt := time.Date(2026, 8, 31, 16, 5, 9, 0, time.UTC)
	result, err := q.Grade("u42", answers, completedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := result.Record()
	if rec["quiz_id"] != "q-test" {
		t.Errorf("expected quiz_id q-test, got %v", rec["quiz_id"])
	}
	if rec["user_id"] != "u42" {
		t.Errorf("expected user_id u42, got %v", rec["user_id"])
	}
	if rec["score"] != 75.0 {
		t.Errorf("expected score 75.0, got %v", rec["score"])
	}
	if rec["quiz_date"] != "8/31/2026 4:05:09 PM" {
		t.Errorf("unexpected quiz_date: %v", rec["quiz_date"])
	}
}

func TestTopics(t *testing.T) {
	want := []string{"English", "History", "Mathematics", "Science"}
	got := quiz.Topics()
	if len(got) != len(want) {
		t.Fatalf("expected %d topics, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected topic %q at %d, got %q", want[i], i, got[i])
		}
	}
}
