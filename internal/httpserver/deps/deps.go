package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/roomiematch/roomiematch/internal/logger"
	"github.com/roomiematch/roomiematch/internal/metrics"
	"github.com/roomiematch/roomiematch/internal/rooms"
	"github.com/roomiematch/roomiematch/internal/store"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	Rooms        *rooms.Service   // listing operations (add/edit/delete/find)
	Store        *store.Memory    // backing store, read directly by infra/metrics
	Metrics      *metrics.Metrics // nil disables recording
	RedisClient  *redis.Client    // nil when no Redis is configured (rate limiting falls back to local)
	AuthToken    string           // static bearer token guarding the tool routes
	OwnerNumber  string           // phone number returned by the validate tool
	SeedFile     string           // path the store was seeded from, "" when unseeded
	TrustProxy   bool             // true if running behind a trusted reverse proxy
	AllowedHosts []string         // Host headers allowed on the tool routes
	AllowedCIDRS []string         // IPs allowed to access infra/metrics endpoints
	RateLimitMax int              // requests allowed per window, 0 disables limiting
	RateLimitWin time.Duration    // rate limit window
}
