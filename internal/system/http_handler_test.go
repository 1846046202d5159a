package system

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time {
	return time.Date(2024, 3, 9, 7, 5, 3, 42_000_000, time.FixedZone("WIB", 7*60*60))
}

func newTestHandler() *HTTPHandler {
	return NewHTTPHandler(Info{Service: "book-api", Version: "1.0.0", Environment: "test"}, fixedNow)
}

func TestHTTPHandler_Root(t *testing.T) {
	w := httptest.NewRecorder()
	newTestHandler().Root(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"message": "Welcome to Book API",
		"documentation": "/api",
		"health": "/health",
		"books": "/api/books"
	}`, w.Body.String())
}

func TestHTTPHandler_APIInfo(t *testing.T) {
	w := httptest.NewRecorder()
	newTestHandler().APIInfo(w, httptest.NewRequest(http.MethodGet, "/api", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp APIInfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Book API", resp.Name)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Equal(t, []string{
		"GET /api/books",
		"GET /api/books/:id",
		"GET /api/books/search?title=&author=&genre=",
		"GET /health",
	}, resp.Endpoints)
}

func TestHTTPHandler_Health(t *testing.T) {
	w := httptest.NewRecorder()
	newTestHandler().Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, HealthResponse{
		Status:      "OK",
		Timestamp:   "2024-03-09T00:05:03.042Z",
		Service:     "book-api",
		Version:     "1.0.0",
		Environment: "test",
	}, resp)
}

func TestHTTPHandler_Health_TimestampIsCurrent(t *testing.T) {
	h := NewHTTPHandler(Info{Service: "book-api"}, nil)

	before := time.Now().UTC().Truncate(time.Millisecond)
	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	after := time.Now().UTC()

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	ts, err := time.Parse(time.RFC3339Nano, resp.Timestamp)
	require.NoError(t, err)
	assert.False(t, ts.Before(before))
	assert.False(t, ts.After(after))
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`, resp.Timestamp)
}
