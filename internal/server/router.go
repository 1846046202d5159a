// Package server assembles the HTTP surface and runs it under supervision.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookcatalog/internal/book"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/system"
)

// RouterConfig carries the cross-cutting policies applied to every route.
type RouterConfig struct {
	CORSOrigins []string
	EnableHSTS  bool
}

// Handlers are the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Books  *book.HTTPHandler
	System *system.HTTPHandler
}

// NewRouter wires the middleware chain and the read-only routes.
//
// RecoveryMiddleware must sit directly inside AccessLogMiddleware so a
// recovered panic is logged with its 500 status.
func NewRouter(cfg RouterConfig, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.MetricsMiddleware)
	r.Use(httpx.AccessLogMiddleware)
	r.Use(httpx.RecoveryMiddleware)
	r.Use(httpx.SecurityHeadersMiddleware(cfg.EnableHSTS))
	r.Use(httpx.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.StripSlashes)
	r.Use(middleware.GetHead)

	r.Get("/", h.System.Root)
	r.Get("/health", h.System.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/api", h.System.APIInfo)
	r.Get("/api/books", h.Books.List)
	// The static segment takes precedence over {id}.
	r.Get("/api/books/search", h.Books.Search)
	r.Get("/api/books/{id}", h.Books.GetByID)

	return r
}
