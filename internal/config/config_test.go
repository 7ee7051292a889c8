package config

import "testing"

func TestBackendURLFallsBackToLocalDefault(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("PUBLIC_API_BASE_URL", "")
	cfg := Load()
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Fatalf("expected local default, got %q", cfg.APIBaseURL)
	}
	if cfg.ForecastURL != "http://localhost:8081/forecast" {
		t.Fatalf("expected local forecast default, got %q", cfg.ForecastURL)
	}
}

func TestBackendURLUsesPublicAlias(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("PUBLIC_API_BASE_URL", "http://alias:9000")
	cfg := Load()
	if cfg.APIBaseURL != "http://alias:9000" {
		t.Fatalf("expected alias value, got %q", cfg.APIBaseURL)
	}
}

func TestBackendURLPrimaryWinsOverAlias(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://primary:9000")
	t.Setenv("PUBLIC_API_BASE_URL", "http://alias:9000")
	cfg := Load()
	if cfg.APIBaseURL != "http://primary:9000" {
		t.Fatalf("expected primary value, got %q", cfg.APIBaseURL)
	}
}

func TestRateLimitConfigClampsBadValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "-5")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "0")
	cfg := LoadRateLimitConfig()
	if cfg.Capacity < 1 || cfg.RefillTokens < 1 {
		t.Fatalf("bucket not clamped: %+v", cfg)
	}
	if cfg.TTL < 5*cfg.RefillInterval {
		t.Fatalf("TTL shorter than refill horizon: %+v", cfg)
	}
}
