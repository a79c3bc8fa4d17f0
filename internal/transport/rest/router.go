package rest

import (
	"net/http"

	"github.com/kikiarya/hsc-planner/internal/transport/middleware"
)

// NewRouter registers the probe and v1 routes. Selection routes require an
// authenticated caller; writeLimit wraps the mutating ones.
func NewRouter(health *HealthHandler, sel *SelectionHandler, writeLimit middleware.Middleware) *http.ServeMux {
	authed := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}
	write := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(middleware.RequireAuth, writeLimit)(h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /v1/subjects", sel.ListSubjects)
	mux.Handle("GET /v1/selections", authed(sel.ListSelections))
	mux.Handle("POST /v1/selections", write(sel.CreateSelection))
	mux.Handle("DELETE /v1/selections/{id}", write(sel.DeleteSelection))
	return mux
}
