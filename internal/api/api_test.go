package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edututor-ai/backend/internal/analytics"
	"github.com/edututor-ai/backend/internal/api"
	"github.com/edututor-ai/backend/internal/classroom"
	"github.com/edututor-ai/backend/internal/service"
	"github.com/edututor-ai/backend/internal/store"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	s, err := store.NewJSONFile(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := api.NewHandler(
		service.NewRecordService(s, logger),
		service.NewAssessmentService(s, logger),
		analytics.NewEngine(s),
		classroom.NewMockCatalog(),
		logger,
	)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)

	srv := httptest.NewServer(api.Logging(logger)(api.CORS(mux)))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestCreateAndGetData(t *testing.T) {
	srv := newServer(t)

	resp := postJSON(t, srv.URL+"/api/create", map[string]any{
		"username": "amira", "role": "student", "email": "amira@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		IsOk    bool           `json:"isOk"`
		Created map[string]any `json:"created"`
	}
	decode(t, resp, &created)
	assert.True(t, created.IsOk)
	assert.Equal(t, "amira", created.Created["username"])

	resp, err := http.Get(srv.URL + "/api/data")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var all []map[string]any
	decode(t, resp, &all)
	require.Len(t, all, 1)
	assert.Equal(t, "amira", all[0]["username"])
}

func TestCreateRejectsMissingBody(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Post(srv.URL+"/api/create", "application/json", bytes.NewReader(nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		IsOk    bool   `json:"isOk"`
		Message string `json:"message"`
	}
	decode(t, resp, &body)
	assert.False(t, body.IsOk)
	assert.Equal(t, "No JSON body", body.Message)
}

func TestSyncGoogle(t *testing.T) {
	srv := newServer(t)

	resp := postJSON(t, srv.URL+"/api/sync_google", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		IsOk    bool               `json:"isOk"`
		Courses []classroom.Course `json:"courses"`
	}
	decode(t, resp, &body)
	assert.True(t, body.IsOk)
	require.Len(t, body.Courses, 4)
	assert.Equal(t, "Advanced Mathematics", body.Courses[0].Name)
}

func TestRegisterLoginFlow(t *testing.T) {
	srv := newServer(t)

	resp := postJSON(t, srv.URL+"/api/register", map[string]any{
		"username": "amira", "email": "amira@example.com", "password": "secret", "role": "student",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/register", map[string]any{
		"username": "amira", "email": "dup@example.com", "password": "pw", "role": "educator",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/login", map[string]any{
		"username": "amira", "password": "secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		IsOk bool           `json:"isOk"`
		User map[string]any `json:"user"`
	}
	decode(t, resp, &login)
	assert.True(t, login.IsOk)
	assert.Equal(t, "student", login.User["role"])

	resp = postJSON(t, srv.URL+"/api/login", map[string]any{
		"username": "amira", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestQuizLifecycle(t *testing.T) {
	srv := newServer(t)

	resp := postJSON(t, srv.URL+"/api/quizzes", map[string]any{
		"topic": "Mathematics", "difficulty": "Easy", "num_questions": 3,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var generated struct {
		IsOk      bool   `json:"isOk"`
		QuizID    string `json:"quiz_id"`
		Questions []struct {
			Question string   `json:"question"`
			Options  []string `json:"options"`
		} `json:"questions"`
	}
	decode(t, resp, &generated)
	require.True(t, generated.IsOk)
	require.Len(t, generated.Questions, 3)
	assert.NotEmpty(t, generated.Questions[0].Options)

	// Incomplete submission is rejected and the quiz survives.
	resp = postJSON(t, srv.URL+"/api/quizzes/"+generated.QuizID+"/submit", map[string]any{
		"user_id": "u1", "answers": []int{0, -1, 0},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/quizzes/"+generated.QuizID+"/submit", map[string]any{
		"user_id": "u1", "answers": []int{0, 1, 2},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var submitted struct {
		IsOk           bool    `json:"isOk"`
		Score          float64 `json:"score"`
		TotalQuestions int     `json:"total_questions"`
		Feedback       string  `json:"feedback"`
	}
	decode(t, resp, &submitted)
	assert.True(t, submitted.IsOk)
	assert.Equal(t, 3, submitted.TotalQuestions)
	assert.NotEmpty(t, submitted.Feedback)

	// The quiz is consumed on grading.
	resp = postJSON(t, srv.URL+"/api/quizzes/"+generated.QuizID+"/submit", map[string]any{
		"user_id": "u1", "answers": []int{0, 1, 2},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestGenerateQuizUnknownTopic(t *testing.T) {
	srv := newServer(t)

	resp := postJSON(t, srv.URL+"/api/quizzes", map[string]any{
		"topic": "Astrology", "difficulty": "Easy", "num_questions": 3,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestEncouragementEndpoints(t *testing.T) {
	srv := newServer(t)

	resp := postJSON(t, srv.URL+"/api/encouragements", map[string]any{
		"educator_id": "t1", "student_id": "u1", "message": "Nice work!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/api/encouragements/t1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		IsOk           bool `json:"isOk"`
		Encouragements []struct {
			Message     string `json:"message"`
			StudentName string `json:"student_name"`
		} `json:"encouragements"`
	}
	decode(t, resp, &body)
	require.Len(t, body.Encouragements, 1)
	assert.Equal(t, "Nice work!", body.Encouragements[0].Message)
	assert.Equal(t, "Unknown Student", body.Encouragements[0].StudentName)
}

func TestAnalyticsEndpointsEmptyStore(t *testing.T) {
	srv := newServer(t)

	for _, path := range []string{
		"/api/analytics/overview",
		"/api/analytics/subjects",
		"/api/analytics/difficulty",
		"/api/analytics/leaderboard",
		"/api/analytics/most-active",
		"/api/analytics/champions",
		"/api/analytics/low-performers",
		"/api/analytics/students/u1",
	} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err, path)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		resp.Body.Close()
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/data", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
