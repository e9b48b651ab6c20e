package router

import (
	"net/http"
	"strings"

	"stock-api/internal/handler"
	"stock-api/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
// authMW is the bearer-token gate applied to every protected route.
func New(
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	authMW func(http.Handler) http.Handler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message": "Stock API is running"}`))
	})

	// Auth routes; register and login are the only open endpoints
	mux.HandleFunc("/api/auth/register", authHandler.Register)
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.Handle("/api/auth/me", authMW(http.HandlerFunc(authHandler.Me)))

	// Product routes, dispatched on path shape and method
	productRoutes := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		switch {
		case path == "/api/products":
			switch r.Method {
			case http.MethodGet:
				productHandler.List(w, r)
			case http.MethodPost:
				productHandler.Create(w, r)
			default:
				methodNotAllowed(w)
			}

		case path == "/api/products/stats":
			if r.Method != http.MethodGet {
				methodNotAllowed(w)
				return
			}
			productHandler.Stats(w, r)

		case strings.HasSuffix(path, "/stock"):
			if r.Method != http.MethodPatch {
				methodNotAllowed(w)
				return
			}
			productHandler.AdjustStock(w, r)

		default:
			switch r.Method {
			case http.MethodGet:
				productHandler.Get(w, r)
			case http.MethodPut:
				productHandler.Update(w, r)
			case http.MethodDelete:
				productHandler.Delete(w, r)
			default:
				methodNotAllowed(w)
			}
		}
	})

	// Register product routes (both with and without trailing slash)
	mux.Handle("/api/products", authMW(productRoutes))
	mux.Handle("/api/products/", authMW(productRoutes))

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}

func methodNotAllowed(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	w.Write([]byte(`{"message": "method not allowed"}`))
}
