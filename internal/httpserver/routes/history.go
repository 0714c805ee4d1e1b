package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/satchelapp/satchel/internal/httpserver/deps"
	"github.com/satchelapp/satchel/internal/httpserver/handlers"
)

func init() { Register(registerHistory) }

func registerHistory(r chi.Router, d deps.Deps) {
	r.Route("/api/history", func(r chi.Router) {
		r.Get("/", handlers.ListHistory(d))
		r.Post("/", handlers.AddHistory(d))
		r.Delete("/", handlers.ClearHistory(d))
	})
}
