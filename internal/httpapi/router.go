package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	// ActionPath is the route of the Migrate Blocks action.
	ActionPath = "/blocks/migrate"
	// LivenessPath is the liveness probe route.
	LivenessPath = "/health/live"
)

// NewRouter registers the action routes behind panic recovery and SameOriginGuard.
func NewRouter(handler *ActionHandler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(SameOriginGuard(handler.logger))
	for _, middlewareFunction := range middlewares {
		router.Use(middlewareFunction)
	}

	router.Get(LivenessPath, handler.Live)
	router.Get(ActionPath, handler.Describe)
	router.Post(ActionPath, handler.Submit)

	return router
}
