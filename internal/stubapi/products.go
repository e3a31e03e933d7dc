package stubapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arifsetiawan/womshop/internal/client/models"
)

const defaultPageLimit = 30

type productPage struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

// handleListProducts handles GET /products?limit=&skip=.
func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultPageLimit)
	skip := queryInt(r, "skip", 0)
	if limit < 0 || skip < 0 {
		writeError(w, http.StatusBadRequest, "limit and skip must be non-negative")
		return
	}

	total := len(s.catalog)
	if skip > total {
		skip = total
	}
	end := skip + limit
	if limit == 0 || end > total {
		end = total
	}

	page := s.catalog[skip:end]
	s.logger.Debug(r.Context(), "products listed", "limit", limit, "skip", skip, "count", len(page))
	writeJSON(w, http.StatusOK, productPage{Products: page, Total: total, Skip: skip, Limit: len(page)})
}

// handleGetProduct handles GET /products/{id}.
func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid product id '%s'", raw))
		return
	}

	for i := range s.catalog {
		if s.catalog[i].ID == id {
			writeJSON(w, http.StatusOK, s.catalog[i])
			return
		}
	}

	writeError(w, http.StatusNotFound, fmt.Sprintf("Product with id '%d' not found", id))
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
