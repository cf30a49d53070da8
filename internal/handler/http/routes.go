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
	router.Use(withGZip)
	router.Use(withNoStore)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/oauth/token", h.exchangeToken)
		r.Get("/api/version", h.getServerVersion)
	})

	// dashboard routes behind a session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/names", h.createName)
		r.Get("/api/names", h.listNames)
		r.Get("/api/names/{id}", h.getName)
		r.Put("/api/names/{id}", h.updateName)
		r.Delete("/api/names/{id}", h.deleteName)

		r.Post("/api/contexts", h.createContext)
		r.Get("/api/contexts", h.listContexts)
		r.Delete("/api/contexts/{id}", h.deleteContext)

		r.Get("/api/assignments", h.listAssignments)
		r.Post("/api/assignments", h.upsertAssignment)
		r.Put("/api/assignments", h.upsertAssignment)
		r.Delete("/api/assignments", h.deleteAssignment)
		r.Post("/api/assignments/bulk", h.bulkSaveAssignments)
		r.Get("/api/assignments/oidc", h.listOIDCAssignments)
		r.Post("/api/assignments/oidc/batch", h.bulkSaveAssignments)

		r.Get("/api/resolve", h.resolveSelf)
		r.Post("/api/resolve/batch", h.resolveBatch)

		r.Get("/api/audit", h.listAuditEvents)

		r.Get("/api/oauth/authorize", h.authorize)
		r.Post("/api/oauth/authorize", h.authorize)
	})

	// third-party client routes behind an OAuth bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.oauthAuth)

		r.Post("/api/oauth/resolve", h.resolveForClient)
	})

	router.MethodNotAllowed(maskUnknownMethods)

	return router
}
