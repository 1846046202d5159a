// Package system serves the service-level endpoints: welcome, API
// description and health.
package system

import (
	"net/http"
	"time"

	"bookcatalog/internal/httpx"
)

const (
	apiName    = "Book API"
	apiVersion = "1.0.0"

	// timestampLayout is ISO-8601 in UTC with millisecond precision.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Endpoints lists the routes advertised by GET /api.
var Endpoints = []string{
	"GET /api/books",
	"GET /api/books/:id",
	"GET /api/books/search?title=&author=&genre=",
	"GET /health",
}

// Info identifies the running service in health responses.
type Info struct {
	Service     string
	Version     string
	Environment string
}

// WelcomeResponse is the body of GET /.
type WelcomeResponse struct {
	Message       string `json:"message"`
	Documentation string `json:"documentation"`
	Health        string `json:"health"`
	Books         string `json:"books"`
}

// APIInfoResponse is the body of GET /api.
type APIInfoResponse struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// HTTPHandler serves the service-level endpoints.
type HTTPHandler struct {
	info Info
	now  func() time.Time
}

// NewHTTPHandler returns a handler reporting info. now defaults to time.Now.
func NewHTTPHandler(info Info, now func() time.Time) *HTTPHandler {
	if now == nil {
		now = time.Now
	}
	return &HTTPHandler{info: info, now: now}
}

// Root handles GET /
func (h *HTTPHandler) Root(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, r, http.StatusOK, WelcomeResponse{
		Message:       "Welcome to " + apiName,
		Documentation: "/api",
		Health:        "/health",
		Books:         "/api/books",
	})
}

// APIInfo handles GET /api
func (h *HTTPHandler) APIInfo(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, r, http.StatusOK, APIInfoResponse{
		Name:      apiName,
		Version:   apiVersion,
		Endpoints: Endpoints,
	})
}

// Health handles GET /health
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, r, http.StatusOK, HealthResponse{
		Status:      "OK",
		Timestamp:   h.now().UTC().Format(timestampLayout),
		Service:     h.info.Service,
		Version:     h.info.Version,
		Environment: h.info.Environment,
	})
}
