package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edututor-ai/backend/internal/classify"
	"github.com/edututor-ai/backend/internal/domain/account"
	"github.com/edututor-ai/backend/internal/domain/quiz"
)

type fakeStore struct {
	accounts       []map[string]any
	quizzes        []map[string]any
	encouragements []map[string]any
}

func (f *fakeStore) GetAll() ([]map[string]any, error) {
	var all []map[string]any
	all = append(all, f.accounts...)
	all = append(all, f.quizzes...)
	all = append(all, f.encouragements...)
	return all, nil
}

func (f *fakeStore) Append(kind classify.Kind, record map[string]any) error {
	switch kind {
	case classify.KindQuizResult:
		f.quizzes = append(f.quizzes, record)
	case classify.KindEncouragement:
		f.encouragements = append(f.encouragements, record)
	default:
		f.accounts = append(f.accounts, record)
	}
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecordService_CreateClassifies(t *testing.T) {
	fs := &fakeStore{}
	rs := NewRecordService(fs, discard())

	_, kind, err := rs.Create(map[string]any{"quiz_id": "q1", "user_id": "u1", "score": 80})
	require.NoError(t, err)
	assert.Equal(t, classify.KindQuizResult, kind)
	assert.Len(t, fs.quizzes, 1)
	assert.Empty(t, fs.accounts)
}

func TestRecordService_RegisterAndLogin(t *testing.T) {
	fs := &fakeStore{}
	rs := NewRecordService(fs, discard())

	acct, err := rs.Register("amira", "amira@example.com", "secret", account.RoleStudent)
	require.NoError(t, err)
	assert.NotEmpty(t, acct.ID)
	assert.Len(t, fs.accounts, 1)

	_, err = rs.Register("amira", "other@example.com", "pw", account.RoleEducator)
	assert.ErrorIs(t, err, ErrUsernameTaken)

	got, err := rs.Login("amira", "secret")
	require.NoError(t, err)
	assert.Equal(t, acct.ID, got["user_id"])

	_, err = rs.Login("amira", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = rs.Login("nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAssessmentService_GenerateAndSubmit(t *testing.T) {
	fs := &fakeStore{}
	as := NewAssessmentService(fs, discard())

	q, shortfall, err := as.GenerateQuiz("Mathematics", quiz.DifficultyEasy, 5)
	require.NoError(t, err)
	assert.False(t, shortfall)
	require.Len(t, q.Questions, 5)

	answers := make([]int, len(q.Questions))
	for i, question := range q.Questions {
		answers[i] = question.Correct
	}

	result, err := as.SubmitQuiz(q.ID, "u1", answers)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, result.Score, 0.001)
	require.Len(t, fs.quizzes, 1)
	assert.Equal(t, "u1", fs.quizzes[0]["user_id"])

	// The quiz is consumed on grading.
	_, err = as.SubmitQuiz(q.ID, "u1", answers)
	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestAssessmentService_IncompleteKeepsQuizAlive(t *testing.T) {
	as := NewAssessmentService(&fakeStore{}, discard())

	q, _, err := as.GenerateQuiz("Science", quiz.DifficultyMedium, 3)
	require.NoError(t, err)

	answers := []int{0, quiz.Unanswered, 0}
	_, err = as.SubmitQuiz(q.ID, "u1", answers)
	assert.ErrorIs(t, err, quiz.ErrIncomplete)

	// A complete retry still finds the quiz.
	for i := range answers {
		answers[i] = 0
	}
	_, err = as.SubmitQuiz(q.ID, "u1", answers)
	assert.NoError(t, err)
}

func TestAssessmentService_ShortfallOnSmallPool(t *testing.T) {
	as := NewAssessmentService(&fakeStore{}, discard())

	q, shortfall, err := as.GenerateQuiz("History", quiz.DifficultyHard, 50)
	require.NoError(t, err)
	assert.True(t, shortfall)
	assert.Len(t, q.Questions, 15)
}

func TestAssessmentService_UnknownTopic(t *testing.T) {
	as := NewAssessmentService(&fakeStore{}, discard())

	_, _, err := as.GenerateQuiz("Astrology", quiz.DifficultyEasy, 5)
	assert.ErrorIs(t, err, quiz.ErrNoQuestions)
}

func TestAssessmentService_SendEncouragement(t *testing.T) {
	fs := &fakeStore{}
	as := NewAssessmentService(fs, discard())

	enc, err := as.SendEncouragement("t1", "u1", "Keep it up!")
	require.NoError(t, err)
	assert.NotEmpty(t, enc.ID)
	require.Len(t, fs.encouragements, 1)
	assert.Equal(t, "Keep it up!", fs.encouragements[0]["message"])

	_, err = as.SendEncouragement("t1", "u1", "")
	assert.Error(t, err)
}
