package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/roomiematch/roomiematch/internal/config"
	"github.com/roomiematch/roomiematch/internal/domain"
	"github.com/roomiematch/roomiematch/internal/httpserver"
	"github.com/roomiematch/roomiematch/internal/httpserver/deps"
	"github.com/roomiematch/roomiematch/internal/logger"
	"github.com/roomiematch/roomiematch/internal/metrics"
	"github.com/roomiematch/roomiematch/internal/redis"
	"github.com/roomiematch/roomiematch/internal/rooms"
	"github.com/roomiematch/roomiematch/internal/sources/seed"
	"github.com/roomiematch/roomiematch/internal/sources/synonyms"
	"github.com/roomiematch/roomiematch/internal/store"
	"github.com/roomiematch/roomiematch/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	loggerClient := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	// Redis is optional: without it rate limiting stays per-instance
	var redisClient *goredis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = redis.Connect(cfg.Redis, loggerClient)
		if err != nil {
			loggerClient.Warn("continuing without redis", logger.Error(err))
			redisClient = nil
		}
	} else {
		loggerClient.Info("no redis address configured, rate limiting is per-instance")
	}

	norm, err := buildNormalizer(cfg, loggerClient)
	if err != nil {
		return nil, err
	}

	st := store.NewMemory()
	if err := seedStore(cfg, st, loggerClient); err != nil {
		return nil, err
	}

	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		Rooms:        rooms.New(st, norm),
		Store:        st,
		Metrics:      metrics.New(st.ActiveCount),
		RedisClient:  redisClient,
		AuthToken:    cfg.Auth.Token,
		OwnerNumber:  cfg.Auth.OwnerNumber,
		SeedFile:     cfg.Data.SeedFile,
		TrustProxy:   cfg.Access.TrustProxy,
		AllowedHosts: cfg.Access.AllowedHosts,
		AllowedCIDRS: cfg.Access.AllowedCIDRS,
		RateLimitMax: cfg.RateLimit.MaxRequests,
		RateLimitWin: cfg.RateLimit.Window,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
	}, nil
}

// buildNormalizer merges optional YAML synonym overrides over the built-in tables
func buildNormalizer(cfg *config.Config, log logger.Logger) (*domain.Normalizer, error) {
	if cfg.Data.SynonymFile == "" {
		return domain.NewNormalizer(nil, nil), nil
	}

	tables, err := synonyms.NewLoader(cfg.Data.SynonymFile).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load synonym tables: %w", err)
	}
	log.Info("synonym overrides loaded",
		logger.String("file", cfg.Data.SynonymFile),
		logger.Int("cities", len(tables.Cities)),
		logger.Int("areas", len(tables.Areas)))
	return domain.NewNormalizer(tables.Cities, tables.Areas), nil
}

// seedStore loads the optional rooms file into the store, once, at startup
func seedStore(cfg *config.Config, st *store.Memory, log logger.Logger) error {
	if cfg.Data.SeedFile == "" {
		log.Info("no seed file configured, starting with an empty store")
		return nil
	}

	roomsCfg, err := seed.NewLoader(cfg.Data.SeedFile).Load()
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}
	listings, err := seed.NewMapper().MapRooms(roomsCfg)
	if err != nil {
		return fmt.Errorf("failed to map seed rooms: %w", err)
	}

	st.Seed(listings)
	log.Info("seed listings loaded",
		logger.String("file", cfg.Data.SeedFile),
		logger.Int("count", len(listings)))
	return nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting RoomieMatch v%s on %s", version.Version, a.cfg.Server.ListenAddr)
	a.logger.Infof("RoomieMatch %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ RoomieMatch stopped cleanly")
	return nil
}
