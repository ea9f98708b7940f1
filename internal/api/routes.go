package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/sorteio/api/internal/roster"
)

// RouterOptions tunes the middleware stack.
type RouterOptions struct {
	AllowedOrigins     []string
	MaxConcurrentDraws int
}

func SetupRoutes(handler *Handler, rosterHandlers *roster.Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	// Setup middleware
	for _, middleware := range SetupMiddleware(opts.AllowedOrigins) {
		r.Use(middleware)
	}

	// JSON content type
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// Health check endpoint
	r.Get("/health", handler.HealthCheck)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/draws", func(r chi.Router) {
			if opts.MaxConcurrentDraws > 0 {
				r.Use(RateLimitMiddleware(opts.MaxConcurrentDraws))
			}
			r.Post("/names", handler.DrawNames)
			r.Post("/numbers", handler.DrawNumbers)
			r.Post("/sequence", handler.DrawSequence)
			r.Post("/groups", handler.DrawGroups)
			r.Post("/weighted", handler.DrawWeighted)
			r.Post("/elimination", handler.DrawElimination)
		})

		r.Get("/groups/plan", handler.PlanGroups)

		// Names and saved lists
		rosterHandlers.RegisterRoutes(r)

		r.Get("/preferences", handler.GetPreferences)
		r.Put("/preferences", handler.UpdatePreferences)
	})

	return r
}
