package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/roomiematch/roomiematch/internal/config"
	"github.com/roomiematch/roomiematch/internal/logger"
	"github.com/roomiematch/roomiematch/internal/utils"
)

const (
	initialRetryWait = 250 * time.Millisecond
	maxRetryWait     = 2 * time.Second
)

// Connect dials Redis and verifies the connection with a ping, retrying
// with exponential backoff until cfg.PingTimeout is exhausted.
// Redis is an optional dependency: callers that receive an error can keep
// running without a client, losing only shared rate limiting.
func Connect(cfg config.RedisConfig, log logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()

	log.Info("connecting to redis",
		logger.String("addr", cfg.Addr),
		logger.Duration("timeout", cfg.PingTimeout))

	wait := initialRetryWait
	for attempt := 1; ; attempt++ {
		err := client.Ping(ctx).Err()
		if err == nil {
			if attempt > 1 {
				log.Warn("connected to redis after retry",
					logger.String("addr", cfg.Addr),
					logger.Int("attempts", attempt))
			} else {
				log.Info("connected to redis", logger.String("addr", cfg.Addr))
			}
			return client, nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			utils.Close(client)
			return nil, fmt.Errorf("redis unavailable at %s after %d attempts (timeout: %v): %w",
				cfg.Addr, attempt, cfg.PingTimeout, err)

		case <-timer.C:
			log.Warn("redis ping failed, retrying",
				logger.String("addr", cfg.Addr),
				logger.Int("attempt", attempt),
				logger.Duration("next_retry_in", wait),
				logger.Error(err))
			// Exponential backoff with cap
			wait *= 2
			if wait > maxRetryWait {
				wait = maxRetryWait
			}
		}
	}
}
