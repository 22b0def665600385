package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/roomiematch/roomiematch/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready    bool `json:"ready"`
	Listings int  `json:"listings"`
}

// Readyz reports readiness. The store lives in process memory, so once
// the server is up it can always take requests.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		_ = json.NewEncoder(w).Encode(readyzResponse{
			Ready:    true,
			Listings: d.Store.Count(),
		})
	}
}
