package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/roomiematch/roomiematch/internal/httpserver/deps"
	"github.com/roomiematch/roomiematch/internal/httpserver/handlers"
	"github.com/roomiematch/roomiematch/internal/httpserver/mw"
)

func init() { Register(registerTools) }

// registerTools mounts the callable tools. Every tool sits behind the
// host allowlist, the rate limiter and the static bearer token.
func registerTools(r chi.Router, d deps.Deps) {
	limits := mw.RateLimitConfig{
		MaxRequests: d.RateLimitMax,
		Window:      d.RateLimitWin,
		KeyPrefix:   "roomiematch:ratelimit",
		TrustProxy:  d.TrustProxy,
	}

	r.Route("/api/tools", func(r chi.Router) {
		r.Use(mw.EnforceHost(d.AllowedHosts, d.Logger))
		r.Use(mw.RateLimit(d.RedisClient, limits, d.Logger))
		r.Use(mw.RequireBearer(d.AuthToken, d.Logger))

		r.Post("/add_room", handlers.AddRoom(d))
		r.Post("/edit_room", handlers.EditRoom(d))
		r.Post("/delete_room", handlers.DeleteRoom(d))
		r.Post("/room_finder", handlers.RoomFinder(d))
		r.Post("/validate", handlers.Validate(d))
		r.Get("/get_help", handlers.GetHelp(d))
	})
}
