// Package handlers implements the HTTP endpoints of the blog API.
// Responses follow the JSON shapes of the public API: entities with
// snake_case fields, list endpoints wrapped in a pagination envelope,
// and errors as {"detail": "..."}.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// paginatedResponse is the envelope returned by list endpoints.
type paginatedResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Size       int         `json:"size"`
	TotalPages int         `json:"total_pages"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

// paginationParams reads skip/limit query parameters with the API's
// bounds: skip >= 0, 1 <= limit <= 1000, defaulting to 0/10.
func paginationParams(r *http.Request) (skip, limit int, ok bool) {
	skip, limit = 0, 10

	if raw := r.URL.Query().Get("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return 0, 0, false
		}
		skip = n
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 1000 {
			return 0, 0, false
		}
		limit = n
	}
	return skip, limit, true
}

func newPage(items interface{}, total int64, skip, limit, size int) paginatedResponse {
	page := 1
	totalPages := 1
	if limit > 0 {
		page = skip/limit + 1
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return paginatedResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
	}
}

// idParam parses the named chi URL parameter as an ID.
func idParam(r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
