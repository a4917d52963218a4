// Package rest wires the HTTP surface over the two stores. The REST
// interface is the sole external consumer of the stores.
package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inkwell/infrastructure/di"
	"inkwell/interfaces/http/rest/handlers"
	"inkwell/interfaces/http/rest/middleware"
	"inkwell/pkg/auth"
	"inkwell/pkg/common"
)

// NewRouter configures all routes and middleware from the container.
func NewRouter(c *di.Container) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(c.Logger))

	if c.Config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if c.Registry != nil {
		router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(
			c.Registry, promhttp.HandlerOpts{Registry: prometheus.Registerer(c.Registry)}))
	}

	authHandler := handlers.NewAuthHandler(c.Sessions, c.Tokens, c.Logger)
	postHandler := handlers.NewPostHandler(c.Content, c.Logger)

	// Ten immediate attempts per client IP, then one more every 3s.
	credentialLimiter := auth.NewTokenBucketLimiter(10, 3*time.Second)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.RateLimit(credentialLimiter)).Post("/login", authHandler.Login)
			r.With(middleware.RateLimit(credentialLimiter)).Post("/register", authHandler.Register)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Authenticate(c.Tokens))
				r.Post("/logout", authHandler.Logout)
				r.Get("/me", authHandler.Me)
			})
		})

		r.Route("/posts", func(r chi.Router) {
			// Reads are public.
			r.Get("/", postHandler.List)
			r.Get("/{postID}", postHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Authenticate(c.Tokens))
				r.Post("/", postHandler.Create)
				r.Put("/{postID}", postHandler.Update)
				r.Delete("/{postID}", postHandler.Delete)
			})
		})
	})

	return router
}
