package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.addUser)
		r.Get("/api/users", h.listUsers)
		r.Get("/api/users/{id}", h.getUser)

		r.Post("/api/costs", h.addCost)

		r.Get("/api/report", h.getReport)

		r.Get("/api/logs", h.getLogs)
		r.Get("/api/about", h.getAbout)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
