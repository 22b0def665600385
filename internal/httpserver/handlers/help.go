package handlers

import (
	"net/http"

	"github.com/roomiematch/roomiematch/internal/httpserver/deps"
	"github.com/roomiematch/roomiematch/internal/httpserver/respond"
	"github.com/roomiematch/roomiematch/internal/metrics"
	"github.com/roomiematch/roomiematch/internal/render"
)

// GetHelp returns the welcome/usage markdown shown to new users
func GetHelp(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recordTool(d, "get_help", metrics.OutcomeSuccess)
		respond.OK(w, render.Help(), nil)
	}
}
