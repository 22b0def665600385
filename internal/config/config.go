package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Data      DataConfig      `mapstructure:"data"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Access    AccessConfig    `mapstructure:"access"`
}

type ServerConfig struct {
	ListenAddr      string        `mapstructure:"listen_addr"`      // ex: ":8086"
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"` // ex: 5s
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Pretty bool   `mapstructure:"pretty"` // true => zap dev (color), false => zap prod (JSON)
}

type AuthConfig struct {
	Token       string `mapstructure:"token"`        // bearer token every tool call must present
	OwnerNumber string `mapstructure:"owner_number"` // number returned by the validate tool
}

type DataConfig struct {
	SeedFile    string `mapstructure:"seed_file"`    // path to rooms.yaml (optional, empty = start empty)
	SynonymFile string `mapstructure:"synonym_file"` // path to synonyms.yaml (optional, empty = built-ins only)
}

type RedisConfig struct {
	Addr         string        `mapstructure:"addr"` // ex: "localhost:6379" (optional, empty = local rate limiting)
	Username     string        `mapstructure:"username"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	PingTimeout  time.Duration `mapstructure:"ping_timeout"`
	PoolSize     int           `mapstructure:"pool_size"`
}

type RateLimitConfig struct {
	MaxRequests int           `mapstructure:"max_requests"` // per client per window
	Window      time.Duration `mapstructure:"window"`
}

type AccessConfig struct {
	TrustProxy   bool     `mapstructure:"trust_proxy"`   // true => trust X-Forwarded-For headers (e.g. cloudflared)
	AllowedHosts []string `mapstructure:"allowed_hosts"` // optional, restrict access to specific Host headers
	AllowedCIDRS []string `mapstructure:"allowed_cidrs"` // optional, restrict /infra and /metrics to these IPs
}

func Load() (*Config, error) {
	// Load local .env for development (ignored when missing).
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	// Optional config.yaml next to the binary; env vars win over it.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Viper splits comma-separated env values but keeps the surrounding
	// whitespace, so "a, b" would otherwise yield the dead entry " b".
	cfg.Access.AllowedHosts = trimEntries(cfg.Access.AllowedHosts)
	cfg.Access.AllowedCIDRS = trimEntries(cfg.Access.AllowedCIDRS)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func trimEntries(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	parts := make([]string, 0, len(list))
	for _, entry := range list {
		trimmed := strings.TrimSpace(entry)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.listen_addr", ":8086")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	v.SetDefault("redis.dial_timeout", 5*time.Second)
	v.SetDefault("redis.read_timeout", 3*time.Second)
	v.SetDefault("redis.write_timeout", 3*time.Second)
	v.SetDefault("redis.ping_timeout", 5*time.Second)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("rate_limit.max_requests", 60)
	v.SetDefault("rate_limit.window", time.Minute)

	v.SetDefault("access.trust_proxy", false)
}

func bindEnvVars(v *viper.Viper) {
	// Server
	v.BindEnv("server.listen_addr", "ROOMIE_LISTEN_ADDR")
	v.BindEnv("server.shutdown_timeout", "ROOMIE_SHUTDOWN_TIMEOUT")

	// Logging
	v.BindEnv("log.level", "ROOMIE_LOG_LEVEL")
	v.BindEnv("log.pretty", "ROOMIE_PRETTY_LOG")

	// Auth
	v.BindEnv("auth.token", "AUTH_TOKEN")
	v.BindEnv("auth.owner_number", "MY_NUMBER")

	// Data files
	v.BindEnv("data.seed_file", "ROOMIE_SEED_FILE")
	v.BindEnv("data.synonym_file", "ROOMIE_SYNONYM_FILE")

	// Redis
	v.BindEnv("redis.addr", "ROOMIE_REDIS_ADDR")
	v.BindEnv("redis.username", "ROOMIE_REDIS_USERNAME")
	v.BindEnv("redis.password", "ROOMIE_REDIS_PASSWORD")
	v.BindEnv("redis.db", "ROOMIE_REDIS_DB")
	v.BindEnv("redis.dial_timeout", "ROOMIE_REDIS_DIAL_TIMEOUT")
	v.BindEnv("redis.read_timeout", "ROOMIE_REDIS_READ_TIMEOUT")
	v.BindEnv("redis.write_timeout", "ROOMIE_REDIS_WRITE_TIMEOUT")
	v.BindEnv("redis.ping_timeout", "ROOMIE_REDIS_PING_TIMEOUT")
	v.BindEnv("redis.pool_size", "ROOMIE_REDIS_POOL_SIZE")

	// Rate limiting
	v.BindEnv("rate_limit.max_requests", "ROOMIE_RATE_LIMIT_MAX")
	v.BindEnv("rate_limit.window", "ROOMIE_RATE_LIMIT_WINDOW")

	// Access restrictions
	v.BindEnv("access.trust_proxy", "ROOMIE_TRUST_PROXY")
	v.BindEnv("access.allowed_hosts", "ROOMIE_ALLOWED_HOSTS")
	v.BindEnv("access.allowed_cidrs", "ROOMIE_ALLOWED_CIDRS")
}

func (c *Config) validate() error {
	if c.Auth.Token == "" {
		return errors.New("required environment variable AUTH_TOKEN is not set")
	}
	if c.Auth.OwnerNumber == "" {
		return errors.New("required environment variable MY_NUMBER is not set")
	}
	return nil
}
