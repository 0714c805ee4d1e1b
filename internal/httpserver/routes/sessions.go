package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/satchelapp/satchel/internal/httpserver/deps"
	"github.com/satchelapp/satchel/internal/httpserver/handlers"
)

func init() { Register(registerSessions) }

func registerSessions(r chi.Router, d deps.Deps) {
	r.Route("/api/sessions", func(r chi.Router) {
		r.Get("/", handlers.ListSessions(d))
		r.Post("/", handlers.CreateSession(d))
		r.Delete("/{id}", handlers.DeleteSession(d))
	})
}
