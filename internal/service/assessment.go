package service

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/edututor-ai/backend/internal/classify"
	"github.com/edututor-ai/backend/internal/domain/encouragement"
	"github.com/edututor-ai/backend/internal/domain/quiz"
	"github.com/edututor-ai/backend/internal/store"
)

// ErrQuizNotFound is returned when a submission names a quiz that was
// never generated or has already been graded.
var ErrQuizNotFound = errors.New("quiz not found")

// AssessmentService hands out quizzes and grades their submissions.
// Generated quizzes live only in memory: a quiz that is never submitted
// leaves no trace, and grading a quiz consumes it.
type AssessmentService struct {
	store  store.Store
	logger *slog.Logger

	mu     sync.Mutex
	active map[string]*quiz.Quiz // quizID → pending quiz
}

func NewAssessmentService(s store.Store, logger *slog.Logger) *AssessmentService {
	return &AssessmentService{
		store:  s,
		logger: logger,
		active: make(map[string]*quiz.Quiz),
	}
}

// GenerateQuiz samples questions for the topic and difficulty and parks
// the quiz until it is submitted. Shortfall reports whether the pool had
// fewer questions than requested.
func (as *AssessmentService) GenerateQuiz(topic string, difficulty quiz.Difficulty, count int) (q *quiz.Quiz, shortfall bool, err error) {
	q, err = quiz.Generate(topic, difficulty, count)
	if err != nil {
		return nil, false, err
	}

	as.mu.Lock()
	as.active[q.ID] = q
	as.mu.Unlock()

	as.logger.Info("quiz generated",
		"quiz_id", q.ID,
		"topic", topic,
		"difficulty", string(difficulty),
		"questions", len(q.Questions),
	)
	return q, q.Shortfall(count), nil
}

// SubmitQuiz grades a pending quiz, persists the result and discards the
// quiz. A second submission for the same quiz gets ErrQuizNotFound.
func (as *AssessmentService) SubmitQuiz(quizID, userID string, answers []int) (*quiz.Result, error) {
	as.mu.Lock()
	q, ok := as.active[quizID]
	if ok {
		delete(as.active, quizID)
	}
	as.mu.Unlock()

	if !ok {
		return nil, ErrQuizNotFound
	}

	result, err := q.Grade(userID, answers, time.Now())
	if err != nil {
		// The quiz stays consumable: an incomplete submission should not
		// lock the student out of finishing it.
		as.mu.Lock()
		as.active[quizID] = q
		as.mu.Unlock()
		return nil, err
	}

	if err := as.store.Append(classify.KindQuizResult, result.Record()); err != nil {
		return nil, err
	}

	as.logger.Info("quiz submitted",
		"quiz_id", quizID,
		"user_id", userID,
		"score", result.Score,
	)
	return result, nil
}

// SendEncouragement records an educator's message to a student.
func (as *AssessmentService) SendEncouragement(educatorID, studentID, message string) (*encouragement.Encouragement, error) {
	enc, err := encouragement.New(educatorID, studentID, message, time.Now())
	if err != nil {
		return nil, err
	}
	if err := as.store.Append(classify.KindEncouragement, enc.Record()); err != nil {
		return nil, err
	}
	as.logger.Info("encouragement sent", "educator_id", educatorID, "student_id", studentID)
	return enc, nil
}
