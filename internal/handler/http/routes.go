package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// Init builds the router.
//
// Middleware order: trace ID first so that every later log line carries it,
// then access logging, panic recovery, security headers, metrics and
// compression. The request timeout applies to API routes only.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withSecureHeaders())
	router.Use(h.metrics.Middleware)
	router.Use(withGZip)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.Route("/api", func(r chi.Router) {
		if h.cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.cfg.RequestTimeout))
		}

		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			if h.cfg.AuthRateLimit > 0 {
				r.Use(httprate.Limit(h.cfg.AuthRateLimit, time.Minute,
					httprate.WithKeyFuncs(httprate.KeyByIP),
					httprate.WithLimitHandler(rateLimited),
				))
			}

			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.With(h.auth).Get("/profile", h.profile)
		})

		// every event route is owner scoped
		r.Route("/events", func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/", h.createEvent)
			r.Get("/", h.findAllEvents)
			r.Get("/upcoming", h.findUpcomingEvents)
			r.Get("/date-range", h.findEventsByDateRange)
			r.Get("/month/{year}/{month}", h.findEventsByMonth)
			r.Get("/{id}", h.findOneEvent)
			r.Patch("/{id}", h.updateEvent)
			r.Delete("/{id}", h.removeEvent)
		})
	})

	return router
}

func rateLimited(w http.ResponseWriter, r *http.Request) {
	writeErrorResponse(w, "too many requests, try again later", http.StatusTooManyRequests)
}
