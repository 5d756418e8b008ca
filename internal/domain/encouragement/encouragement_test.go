package encouragement

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	sent := time.Date(2026, time.August, 31, 16, 5, 9, 0, time.UTC)
	enc, err := New("t1", "u1", "Great work!", sent)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if enc.ID == "" {
		t.Error("expected a generated ID")
	}
	if enc.SentDate != "8/31/2026 4:05:09 PM" {
		t.Errorf("SentDate = %q", enc.SentDate)
	}

	record := enc.Record()
	if record["educator_id"] != "t1" || record["student_id"] != "u1" {
		t.Errorf("unexpected record: %+v", record)
	}
}

func TestNewRejectsMissingFields(t *testing.T) {
	cases := []struct {
		name                           string
		educatorID, studentID, message string
	}{
		{"no educator", "", "u1", "hi"},
		{"no student", "t1", "", "hi"},
		{"no message", "t1", "u1", ""},
	}
	for _, tc := range cases {
		if _, err := New(tc.educatorID, tc.studentID, tc.message, time.Now()); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}
