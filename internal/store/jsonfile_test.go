package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edututor-ai/backend/internal/classify"
	"github.com/edututor-ai/backend/internal/store"
)

func newStore(t *testing.T) (*store.JSONFileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	s, err := store.NewJSONFile(path)
	require.NoError(t, err)
	return s, path
}

func TestNewJSONFile_InitializesEmptyState(t *testing.T) {
	s, path := newStore(t)

	records, err := s.GetAll()
	require.NoError(t, err)
	assert.Empty(t, records)

	// The empty state is persisted, not just held in memory.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.JSONEq(t, `[]`, string(doc["users"]))
	assert.JSONEq(t, `[]`, string(doc["quizzes"]))
	assert.JSONEq(t, `[]`, string(doc["encouragements"]))
}

func TestAppend_RoundTrip(t *testing.T) {
	s, _ := newStore(t)

	account := map[string]any{"user_id": "u1", "username": "amira", "role": "student"}
	result := map[string]any{"quiz_id": "q1", "user_id": "u1", "topic": "Science", "score": 70.0}
	enc := map[string]any{"encouragement_id": "e1", "educator_id": "u2", "student_id": "u1", "message": "nice"}

	require.NoError(t, s.Append(classify.KindAccount, account))
	require.NoError(t, s.Append(classify.KindQuizResult, result))
	require.NoError(t, s.Append(classify.KindEncouragement, enc))

	records, err := s.GetAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Flattened order is accounts, quizzes, encouragements.
	assert.Equal(t, "u1", records[0]["user_id"])
	assert.Equal(t, "q1", records[1]["quiz_id"])
	assert.Equal(t, "e1", records[2]["encouragement_id"])
}

func TestAppend_SurvivesReopen(t *testing.T) {
	s, path := newStore(t)
	require.NoError(t, s.Append(classify.KindAccount, map[string]any{"user_id": "u1", "role": "student"}))

	reopened, err := store.NewJSONFile(path)
	require.NoError(t, err)

	records, err := reopened.GetAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "u1", records[0]["user_id"])
}

func TestLoad_CorruptDocumentDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := store.NewJSONFile(path)
	require.NoError(t, err)

	records, err := s.GetAll()
	require.NoError(t, err)
	assert.Empty(t, records)

	// The corrupt file is not rewritten by a read; only an append replaces it.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(raw))

	require.NoError(t, s.Append(classify.KindAccount, map[string]any{"user_id": "u1"}))
	records, err = s.GetAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestGetAll_RefilterReconstructsCollections(t *testing.T) {
	s, _ := newStore(t)

	require.NoError(t, s.Append(classify.KindAccount, map[string]any{"user_id": "u1", "role": "student"}))
	require.NoError(t, s.Append(classify.KindAccount, map[string]any{"user_id": "u2", "role": "educator"}))
	require.NoError(t, s.Append(classify.KindQuizResult, map[string]any{"quiz_id": "q1", "user_id": "u1"}))
	require.NoError(t, s.Append(classify.KindEncouragement, map[string]any{"encouragement_id": "e1", "educator_id": "u2"}))

	records, err := s.GetAll()
	require.NoError(t, err)

	var accounts, quizzes, encouragements int
	for _, r := range records {
		if _, ok := r["role"]; ok {
			accounts++
		}
		if _, ok := r["quiz_id"]; ok {
			quizzes++
		}
		if _, ok := r["encouragement_id"]; ok {
			encouragements++
		}
	}
	assert.Equal(t, 2, accounts)
	assert.Equal(t, 1, quizzes)
	assert.Equal(t, 1, encouragements)
}

func TestAppend_ConcurrentWritersLoseNothing(t *testing.T) {
	s, _ := newStore(t)

	done := make(chan error)
	for i := 0; i < 10; i++ {
		go func(n int) {
			done <- s.Append(classify.KindQuizResult, map[string]any{
				"quiz_id": "q", "user_id": "u", "n": n,
			})
		}(i)
	}
	for i := 0; i < 10; i++ {
		require.NoError(t, <-done)
	}

	records, err := s.GetAll()
	require.NoError(t, err)
	assert.Len(t, records, 10)
}
