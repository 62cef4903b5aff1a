package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

var storefrontOrigins = []string{
	"http://localhost:3000", // local storefront dev
	"https://emart-store.vercel.app",
}

// CORS applies the storefront origin policy. Dev deployments accept any
// origin so local tooling can hit the API directly.
func CORS(dev bool) func(http.Handler) http.Handler {
	origins := storefrontOrigins
	if dev {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler
}
