package mw

import (
	"net/http"
	"strings"

	"github.com/roomiematch/roomiematch/internal/httpserver/respond"
	"github.com/roomiematch/roomiematch/internal/logger"
)

// RequireBearer guards routes with a static bearer token.
// The token is compared verbatim; possession is the whole identity model.
func RequireBearer(token string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || got != token {
				log.Warn("rejected unauthenticated tool call",
					logger.String("path", r.URL.Path),
					logger.String("remote_ip", r.RemoteAddr))
				respond.Error(w, http.StatusUnauthorized, "", respond.ErrorDetail{
					Code:    "unauthorized",
					Message: "missing or invalid bearer token",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
