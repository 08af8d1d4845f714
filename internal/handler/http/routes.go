package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/profile", h.getProfile)
		r.Put("/api/profile", h.putProfile)

		r.With(withETag).Get("/api/seeds", h.listSeeds)
		r.Post("/api/seeds", h.putSeed)
		r.Post("/api/seeds/sync", h.syncSeeds)
		r.Delete("/api/seeds/{clientSideID}", h.deleteSeed)

		r.With(withETag).Get("/api/wisdom", h.listWisdom)
		r.Post("/api/wisdom", h.putWisdom)
		r.Post("/api/wisdom/sync", h.syncWisdom)
		r.Delete("/api/wisdom/{clientSideID}", h.deleteWisdom)

		r.With(withETag).Get("/api/messages", h.listMessages)
		r.Post("/api/messages", h.addMessage)
		r.Post("/api/messages/sync", h.syncMessages)
		r.Delete("/api/messages", h.clearMessages)

		r.With(withETag).Get("/api/checkins", h.listCheckins)
		r.Post("/api/checkins", h.putCheckin)
		r.Post("/api/checkins/sync", h.syncCheckins)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
