package handlers

import (
	"net/http"

	"github.com/nmoreno/blogapi/internal/db"
)

// Health reports process liveness and database reachability.
func Health(pool db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := pool.PingContext(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":   "unhealthy",
				"database": "unreachable",
			})
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{
			"status":   "ok",
			"database": "reachable",
		})
	}
}
