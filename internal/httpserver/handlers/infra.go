package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/roomiematch/roomiematch/internal/httpserver/deps"
)

type componentStatus struct {
	OK             bool   `json:"ok"`
	ListingsLoaded *int   `json:"listings_loaded,omitempty"`
	LastSeed       string `json:"last_seed,omitempty"`
	Source         string `json:"source,omitempty"`
	Mode           string `json:"mode,omitempty"`
	Impact         string `json:"impact,omitempty"`
	Error          string `json:"error,omitempty"`
}

type infraResponse struct {
	ServiceMode string                     `json:"service_mode"`
	Components  map[string]componentStatus `json:"components"`
}

// Infra reports the state of each runtime component. An empty store is
// normal for a fresh marketplace, so it never degrades the mode.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		listings := d.Store.Count()
		lastSeed := "never"
		if t := d.Store.LastSeed(); !t.IsZero() {
			lastSeed = t.Format("2006-01-02 15:04:05")
		}
		source := "empty"
		if d.SeedFile != "" {
			source = d.SeedFile
		}

		components := map[string]componentStatus{
			"store": {
				OK:             true,
				ListingsLoaded: &listings,
				LastSeed:       lastSeed,
				Source:         source,
			},
			"redis": checkRedis(d),
		}

		response := infraResponse{
			ServiceMode: determineServiceMode(d, components),
			Components:  components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// determineServiceMode summarizes how the instance is running:
// "full" with shared rate limiting, "degraded" when Redis is configured
// but unreachable, "standalone" when no Redis was configured at all.
func determineServiceMode(d deps.Deps, components map[string]componentStatus) string {
	if d.RedisClient == nil {
		return "standalone"
	}
	if redis, exists := components["redis"]; exists && !redis.OK {
		return "degraded"
	}
	return "full"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Mode:   "local",
			Impact: "rate-limit-per-instance",
			Error:  "client not configured",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "local",
			Impact: "rate-limit-per-instance",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "shared",
		Impact: "rate-limit-shared",
		Error:  "none",
	}
}
