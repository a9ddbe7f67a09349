package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/mind-engage/mindengage-quiz/internal/api/http"
	"github.com/mind-engage/mindengage-quiz/internal/grading"
	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

const invalidSubmission = "Invalid submission format. Expected an array of answers."

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "questions.json"))
	require.NoError(t, err)
	qs, err := quiz.ParseQuestions(data)
	require.NoError(t, err)

	srv := httptest.NewServer(api.NewRouter(quiz.NewMemoryStore(qs), grading.NewScorer(), api.RouterOptions{}))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()
	res, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, body
}

func submit(t *testing.T, srv *httptest.Server, body string) (int, map[string]any) {
	t.Helper()
	res, err := http.Post(srv.URL+"/submit", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return res.StatusCode, out
}

func TestStatus(t *testing.T) {
	srv := newServer(t)
	res, body := get(t, srv, "/")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestUnknownRoute(t *testing.T) {
	srv := newServer(t)
	res, body := get(t, srv, "/not-exist")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.JSONEq(t, `{"error":"Not Found"}`, string(body))
}

func TestWrongMethod(t *testing.T) {
	srv := newServer(t)
	res, body := get(t, srv, "/submit")
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
	assert.JSONEq(t, `{"error":"Method Not Allowed"}`, string(body))
}

func TestListQuestions(t *testing.T) {
	srv := newServer(t)
	res, body := get(t, srv, "/questions")
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 20)
	for i, q := range list {
		assert.NotContains(t, q, "answer")
		assert.JSONEq(t, jsonInt(i+1), string(q["id"]))
		assert.Contains(t, q, "question")
	}
	assert.JSONEq(t, `["Python","HTML","Java","CSS"]`, string(list[0]["options"]))
}

func jsonInt(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func TestGetQuestion(t *testing.T) {
	srv := newServer(t)
	res, body := get(t, srv, "/questions/1")
	require.Equal(t, http.StatusOK, res.StatusCode)

	var q map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &q))
	assert.JSONEq(t, `1`, string(q["id"]))
	assert.NotContains(t, q, "answer")
	assert.JSONEq(t, `"checkbox"`, string(q["type"]))
}

func TestGetQuestionNotFound(t *testing.T) {
	srv := newServer(t)
	for _, path := range []string{"/questions/non-exist", "/questions/99", "/questions/1.5"} {
		res, body := get(t, srv, path)
		assert.Equal(t, http.StatusNotFound, res.StatusCode, path)
		assert.JSONEq(t, `{"error":"Question not found"}`, string(body), path)
	}
}

func TestSubmit(t *testing.T) {
	srv := newServer(t)
	tests := []struct {
		name string
		body string
		want float64
	}{
		{"multi select and matching", `[
			{"id":1,"answer":["Python","Java"]},
			{"id":2,"answer":{"1":"C","2":"Python","3":"JavaScript","4":"Go"}}
		]`, 2},
		{"empty array", `[]`, 0},
		{"text answer lower case", `[{"id":4,"answer":"bangkok"}]`, 1},
		{"wrong text answer", `[{"id":4,"answer":"Hanoi"}]`, 0},
		{"unordered array answer", `[{"id":5,"answer":["GCP","Azure","AWS"]}]`, 1},
		{"wrong radio answer", `[{"id":3,"answer":"No"}]`, 0},
		{"correct radio answer", `[{"id":3,"answer":"Yes"}]`, 1},
		{"matching answer", `[{"id":6,"answer":{"NoSQL":"Unstructured data","SQL":"Structured data"}}]`, 1},
		{"unknown id", `[{"id":404,"answer":"Bangkok"},{"id":4,"answer":"Bangkok"}]`, 1},
		{"garbage entries", `[null, 1, {"id":4,"answer":12}, {"id":5,"answer":"AWS"}]`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, out := submit(t, srv, tt.body)
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, map[string]any{"points": tt.want}, out)
		})
	}
}

func TestSubmitInvalidFormat(t *testing.T) {
	srv := newServer(t)
	for _, body := range []string{
		`{"id":1,"answer":"Invalid Answer Format"}`,
		`"nope"`,
		``,
		`[{"id":1`,
		`[] {"id":1}`,
		`[{"id":4,"answer":"bangkok"}]garbage`,
	} {
		status, out := submit(t, srv, body)
		assert.Equal(t, http.StatusBadRequest, status, body)
		assert.Equal(t, map[string]any{"error": invalidSubmission}, out, body)
	}
}

func TestSubmitDoesNotLeakAcrossRequests(t *testing.T) {
	srv := newServer(t)
	for i := 0; i < 2; i++ {
		_, out := submit(t, srv, `[{"id":1,"answer":["Java","Python"]}]`)
		assert.Equal(t, float64(1), out["points"])
	}
	res, body := get(t, srv, "/questions/1")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, string(body), "answer")
}

func TestCORS(t *testing.T) {
	srv := newServer(t)
	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/submit", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestCORSAllowsRequestedHeaders(t *testing.T) {
	srv := newServer(t)
	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/submit", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Requested-With")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, strings.ToLower(res.Header.Get("Access-Control-Allow-Headers")), "x-requested-with")
}
