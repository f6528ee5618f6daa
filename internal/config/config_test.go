package config

import "testing"

func validConfig() Config {
	return Config{
		Addr:           ":8080",
		DatabaseURL:    "postgres://localhost/shoppay",
		Environment:    "development",
		MaxBodyBytes:   1048576,
		MaxUploadBytes: 10485760,
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	missingDB := validConfig()
	missingDB.DatabaseURL = ""
	if err := missingDB.Validate(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}

	prodNoSecret := validConfig()
	prodNoSecret.Environment = "production"
	if err := prodNoSecret.Validate(); err == nil {
		t.Fatal("expected error for missing JWT secret in production")
	}

	tinyBody := validConfig()
	tinyBody.MaxBodyBytes = 10
	if err := tinyBody.Validate(); err == nil {
		t.Fatal("expected error for tiny body limit")
	}

	uploadBelowBody := validConfig()
	uploadBelowBody.MaxUploadBytes = 1024
	if err := uploadBelowBody.Validate(); err == nil {
		t.Fatal("expected error for upload limit below body limit")
	}

	negativeHoliday := validConfig()
	negativeHoliday.HolidayRate = -1
	if err := negativeHoliday.Validate(); err == nil {
		t.Fatal("expected error for negative holiday rate")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Addr == "" {
		t.Fatal("expected default address")
	}
	if !cfg.RunMigrations || !cfg.RunSeed {
		t.Fatal("migrations and seed default on")
	}
	if cfg.MaxUploadBytes < cfg.MaxBodyBytes {
		t.Fatal("default upload limit must cover the body limit")
	}
}
