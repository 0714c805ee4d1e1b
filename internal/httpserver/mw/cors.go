package mw

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS permits cross-origin access from the configured origin allow-list
// (or all origins) with credentials allowed and all methods/headers
// permitted. The companion extension runs on browser-internal origins, so
// the default is wide open.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
