package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want 5432", cfg.Database.Port)
	}
	if cfg.Payment.AdminUserID != 14 {
		t.Errorf("Payment.AdminUserID = %d, want 14", cfg.Payment.AdminUserID)
	}
	if cfg.Payment.CheckoutURL == "" {
		t.Error("Payment.CheckoutURL must have a default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("ADMIN_ID", "99")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.Database.Port != 6543 {
		t.Errorf("Database.Port = %d, want 6543", cfg.Database.Port)
	}
	if cfg.Payment.AdminUserID != 99 {
		t.Errorf("Payment.AdminUserID = %d, want 99", cfg.Payment.AdminUserID)
	}
	if cfg.Redis.Addr != "redis:6379" {
		t.Errorf("Redis.Addr = %q, want redis:6379", cfg.Redis.Addr)
	}
}

func TestGetEnvIntBadValue(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	cfg := Load()
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want fallback 5432", cfg.Database.Port)
	}
}
