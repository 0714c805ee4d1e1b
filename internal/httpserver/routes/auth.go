package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/satchelapp/satchel/internal/httpserver/deps"
	"github.com/satchelapp/satchel/internal/httpserver/handlers"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	r.Post("/api/auth/login", handlers.Login(d))
}
