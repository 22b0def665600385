package handlers

import (
	"net/http"

	"github.com/roomiematch/roomiematch/internal/httpserver/deps"
	"github.com/roomiematch/roomiematch/internal/httpserver/respond"
	"github.com/roomiematch/roomiematch/internal/metrics"
)

type validateData struct {
	Number string `json:"number"`
}

// Validate returns the operator's contact number, proving which
// deployment the caller is talking to
func Validate(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recordTool(d, "validate", metrics.OutcomeSuccess)
		respond.OK(w, d.OwnerNumber, validateData{Number: d.OwnerNumber})
	}
}
