package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AUTH_TOKEN", "secret-token")
	t.Setenv("MY_NUMBER", "919999999999")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ListenAddr != ":8086" {
		t.Errorf("ListenAddr = %q, want :8086", cfg.Server.ListenAddr)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Log.Level != "info" || !cfg.Log.Pretty {
		t.Errorf("Log = %+v, want level=info pretty=true", cfg.Log)
	}
	if cfg.Auth.Token != "secret-token" {
		t.Errorf("Auth.Token = %q, want secret-token", cfg.Auth.Token)
	}
	if cfg.Auth.OwnerNumber != "919999999999" {
		t.Errorf("Auth.OwnerNumber = %q, want 919999999999", cfg.Auth.OwnerNumber)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("Redis.Addr = %q, want empty by default", cfg.Redis.Addr)
	}
	if cfg.Redis.DialTimeout != 5*time.Second || cfg.Redis.PoolSize != 10 {
		t.Errorf("Redis defaults = %+v", cfg.Redis)
	}
	if cfg.RateLimit.MaxRequests != 60 || cfg.RateLimit.Window != time.Minute {
		t.Errorf("RateLimit defaults = %+v", cfg.RateLimit)
	}
	if cfg.Data.SeedFile != "" || cfg.Data.SynonymFile != "" {
		t.Errorf("Data defaults = %+v, want empty paths", cfg.Data)
	}
	if cfg.Access.TrustProxy {
		t.Error("TrustProxy should default to false")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ROOMIE_LISTEN_ADDR", ":9090")
	t.Setenv("ROOMIE_SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("ROOMIE_LOG_LEVEL", "debug")
	t.Setenv("ROOMIE_PRETTY_LOG", "false")
	t.Setenv("ROOMIE_SEED_FILE", "/data/rooms.yaml")
	t.Setenv("ROOMIE_SYNONYM_FILE", "/data/synonyms.yaml")
	t.Setenv("ROOMIE_REDIS_ADDR", "localhost:6379")
	t.Setenv("ROOMIE_REDIS_DB", "2")
	t.Setenv("ROOMIE_RATE_LIMIT_MAX", "5")
	t.Setenv("ROOMIE_RATE_LIMIT_WINDOW", "30s")
	t.Setenv("ROOMIE_TRUST_PROXY", "true")
	t.Setenv("ROOMIE_ALLOWED_HOSTS", "rooms.example.com, api.example.com")
	t.Setenv("ROOMIE_ALLOWED_CIDRS", "10.0.0.0/8, 192.168.1.0/24")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q, want :9090", cfg.Server.ListenAddr)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Pretty {
		t.Errorf("Log = %+v, want level=debug pretty=false", cfg.Log)
	}
	if cfg.Data.SeedFile != "/data/rooms.yaml" {
		t.Errorf("SeedFile = %q", cfg.Data.SeedFile)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 2 {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.RateLimit.MaxRequests != 5 || cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("RateLimit = %+v", cfg.RateLimit)
	}
	if !cfg.Access.TrustProxy {
		t.Error("TrustProxy = false, want true")
	}
	if len(cfg.Access.AllowedHosts) != 2 ||
		cfg.Access.AllowedHosts[0] != "rooms.example.com" ||
		cfg.Access.AllowedHosts[1] != "api.example.com" {
		t.Errorf("AllowedHosts = %v, want trimmed [rooms.example.com api.example.com]", cfg.Access.AllowedHosts)
	}
	if len(cfg.Access.AllowedCIDRS) != 2 ||
		cfg.Access.AllowedCIDRS[0] != "10.0.0.0/8" ||
		cfg.Access.AllowedCIDRS[1] != "192.168.1.0/24" {
		t.Errorf("AllowedCIDRS = %v, want trimmed [10.0.0.0/8 192.168.1.0/24]", cfg.Access.AllowedCIDRS)
	}
}

func TestTrimEntries(t *testing.T) {
	got := trimEntries([]string{" rooms.example.com", `"api.example.com" `, "  ", "'*.example.com'"})
	want := []string{"rooms.example.com", "api.example.com", "*.example.com"}
	if len(got) != len(want) {
		t.Fatalf("trimEntries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("trimEntries[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if trimEntries(nil) != nil {
		t.Error("trimEntries(nil) should stay nil")
	}
}

func TestLoadMissingAuthToken(t *testing.T) {
	t.Setenv("AUTH_TOKEN", "")
	t.Setenv("MY_NUMBER", "919999999999")

	if _, err := Load(); err == nil {
		t.Error("Load() without AUTH_TOKEN should return error")
	}
}

func TestLoadMissingOwnerNumber(t *testing.T) {
	t.Setenv("AUTH_TOKEN", "secret-token")
	t.Setenv("MY_NUMBER", "")

	if _, err := Load(); err == nil {
		t.Error("Load() without MY_NUMBER should return error")
	}
}
