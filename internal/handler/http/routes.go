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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// every route below requires a live session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/user/logout", h.logout)

		r.Route("/api/patients", func(r chi.Router) {
			r.Get("/", h.listPatients)
			r.Post("/", h.addPatient)
			r.Get("/stats", h.patientStatistics)
			r.Get("/search", h.searchPatients)
			r.Post("/dataset", h.loadDataset)

			r.Get("/{id}", h.getPatient)
			r.Put("/{id}", h.updatePatient)
			r.Delete("/{id}", h.deletePatient)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
