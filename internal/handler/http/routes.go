package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCrashRecovery)

	// the game client may be served from any origin
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	router.Post("/api/login", h.login)

	router.Group(func(r chi.Router) {
		r.Get("/api/admin/access-data", h.accessData)
		r.Get("/api/admin/logs", h.logs)
	})

	// browser game assets
	router.Handle("/*", http.FileServer(http.Dir(h.staticDir)))

	return router
}
