package encouragement

import (
	"errors"
	"time"

	"github.com/edututor-ai/backend/internal/displaydate"
	"github.com/edututor-ai/backend/internal/id"
)

// Encouragement is a one-shot message from an educator to a student.
// Referential integrity of the two account IDs is not enforced anywhere.
type Encouragement struct {
	ID         string
	EducatorID string
	StudentID  string
	Message    string
	SentDate   string
}

func New(educatorID, studentID, message string, sentAt time.Time) (*Encouragement, error) {
	if educatorID == "" {
		return nil, errors.New("educator_id cannot be empty")
	}
	if studentID == "" {
		return nil, errors.New("student_id cannot be empty")
	}
	if message == "" {
		return nil, errors.New("message cannot be empty")
	}
	return &Encouragement{
		ID:         id.GenerateID(),
		EducatorID: educatorID,
		StudentID:  studentID,
		Message:    message,
		SentDate:   displaydate.Format(sentAt),
	}, nil
}

func (e *Encouragement) Record() map[string]any {
	return map[string]any{
		"encouragement_id": e.ID,
		"educator_id":      e.EducatorID,
		"student_id":       e.StudentID,
		"message":          e.Message,
		"sent_date":        e.SentDate,
	}
}
