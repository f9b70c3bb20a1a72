package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("REVENUE_PRICING", "")

	cfg := Load()

	if cfg.StoreBackend != BackendMemory {
		t.Errorf("StoreBackend = %q, want %q", cfg.StoreBackend, BackendMemory)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), ":8080")
	}
	if cfg.RevenuePricing != PricingLive {
		t.Errorf("RevenuePricing = %q, want %q", cfg.RevenuePricing, PricingLive)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Remote")
	t.Setenv("REMOTE_API_URL", "http://api.local/api")
	t.Setenv("REMOTE_TIMEOUT", "3s")
	t.Setenv("REMOTE_FALLBACK", "true")
	t.Setenv("REDIS_DB", "2")

	cfg := Load()

	if cfg.StoreBackend != BackendRemote {
		t.Errorf("StoreBackend = %q, want %q", cfg.StoreBackend, BackendRemote)
	}
	if cfg.RemoteTimeout != 3*time.Second {
		t.Errorf("RemoteTimeout = %v, want 3s", cfg.RemoteTimeout)
	}
	if !cfg.RemoteFallback {
		t.Error("RemoteFallback = false, want true")
	}
	if cfg.RedisDB != 2 {
		t.Errorf("RedisDB = %d, want 2", cfg.RedisDB)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory", Config{StoreBackend: BackendMemory, RevenuePricing: PricingLive}, false},
		{"booked pricing", Config{StoreBackend: BackendRedis, RevenuePricing: PricingBooked}, false},
		{"remote without url", Config{StoreBackend: BackendRemote, RevenuePricing: PricingLive}, true},
		{"unknown backend", Config{StoreBackend: "sqlite", RevenuePricing: PricingLive}, true},
		{"unknown pricing", Config{StoreBackend: BackendMemory, RevenuePricing: "average"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
