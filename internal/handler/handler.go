package handler

import (
	"net/http"
	"strings"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/repository"
)

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type"
	corsMaxAge       = "600"
)

// Handler serves the health probe and owns the CORS policy for the
// configured frontend origin.
type Handler struct {
	db     repository.DB
	origin string
}

func New(db repository.DB, frontendURL string) *Handler {
	return &Handler{db: db, origin: strings.TrimRight(frontendURL, "/")}
}

// CORS reflects the request Origin only when it equals the frontend origin.
// Preflight requests are answered here and never reach next.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Origin")
		origin := r.Header.Get("Origin")
		allowed := origin != "" && origin == h.origin
		if allowed {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}

		if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
		w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
		w.Header().Set("Access-Control-Max-Age", corsMaxAge)
		w.WriteHeader(http.StatusNoContent)
	})
}
