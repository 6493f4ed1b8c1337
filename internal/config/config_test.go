package config

import (
	"os"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("PORT")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Fatalf("default port = %q, want 8000", cfg.Server.Port)
	}
	if cfg.Database.Name != "huts" {
		t.Fatalf("default database name = %q, want huts", cfg.Database.Name)
	}
	if cfg.Database.URL != "" {
		t.Fatalf("expected empty DATABASE_URL, got %q", cfg.Database.URL)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	os.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	os.Setenv("DATABASE_NAME", "huts_test")
	os.Setenv("PORT", "9000")
	defer func() {
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("DATABASE_NAME")
		os.Unsetenv("PORT")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Database.URL == "" || cfg.Database.Name != "huts_test" || cfg.Server.Port != "9000" {
		t.Fatalf("unexpected config values: %+v", cfg)
	}
}
