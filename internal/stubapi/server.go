// Package stubapi implements a small storefront service speaking the same
// wire protocol as dummyjson.com. It backs local development and end-to-end
// tests of the client without touching the public service.
package stubapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/arifsetiawan/womshop/internal/client/models"
	"github.com/arifsetiawan/womshop/internal/logging"
)

// TokenExpiry is the access token lifetime used when the login request does
// not ask for one.
const TokenExpiry = 60 * time.Minute

// Server holds the demo accounts, the sample catalog, and the signing secret.
type Server struct {
	logger  logging.Logger
	secret  []byte
	catalog []models.Product
}

// NewServer creates a stub server signing tokens with the given secret.
func NewServer(secret string, logger logging.Logger) *Server {
	return &Server{
		logger:  logger,
		secret:  []byte(secret),
		catalog: sampleCatalog(),
	}
}

// Router returns the HTTP routes: POST /auth/login, GET /auth/me,
// GET /products and GET /products/{id}.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))

	r.Post("/auth/login", s.handleLogin)
	r.Get("/auth/me", s.handleMe)
	r.Get("/products", s.handleListProducts)
	r.Get("/products/{id}", s.handleGetProduct)

	return r
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError emits the dummyjson error shape: {"message": "..."}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
