package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var configEnv = []string{
	"PORT", "DOG_API_BASE_URL", "DOG_API_KEY", "VITE_DOG_API_KEY", "DOG_API_KEY_HEADER",
	"DOG_API_TIMEOUT", "SHUTDOWN_TIMEOUT", "READ_HEADER_TIMEOUT", "WRITE_TIMEOUT", "SWAGGER",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnv {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Port != "8080" || cfg.DogAPIBaseURL != defaultDogAPIURL || cfg.DogAPIKeyHeader != "x-api-key" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DogAPITimeout != 10*time.Second || cfg.WriteTimeout != 30*time.Second {
		t.Fatalf("unexpected timeouts: %+v", cfg)
	}
	if cfg.HasAPIKey() || !cfg.EnableSwagger {
		t.Fatalf("unexpected flags: %+v", cfg)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DOG_API_BASE_URL", "http://localhost:1234/v1")
	t.Setenv("VITE_DOG_API_KEY", "legacy")
	t.Setenv("DOG_API_TIMEOUT", "2s")
	t.Setenv("SWAGGER", "OFF")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Port != "9090" || cfg.DogAPIBaseURL != "http://localhost:1234/v1" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.DogAPIKey != "legacy" || !cfg.HasAPIKey() {
		t.Fatalf("expected fallback api key, got %q", cfg.DogAPIKey)
	}
	if cfg.DogAPITimeout != 2*time.Second || cfg.EnableSwagger {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}

	t.Setenv("DOG_API_KEY", "primary")
	cfg, _ = Load()
	if cfg.DogAPIKey != "primary" {
		t.Fatalf("DOG_API_KEY must win, got %q", cfg.DogAPIKey)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"bad duration": {"DOG_API_TIMEOUT", "soon"},
		"zero timeout": {"DOG_API_TIMEOUT", "0s"},
		"bad url":      {"DOG_API_BASE_URL", "api.thedogapi.com"},
	}
	for name, kv := range cases {
		clearEnv(t)
		t.Setenv(kv[0], kv[1])
		if _, err := Load(); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadDotEnv_DoesNotOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("PORT=1111\nDOG_API_KEY_HEADER=X-Key\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	// godotenv solo carga variables no definidas
	os.Unsetenv("DOG_API_KEY_HEADER")
	t.Cleanup(func() { os.Unsetenv("DOG_API_KEY_HEADER") })

	LoadDotEnv(path, filepath.Join(dir, "missing.env"))

	if got := os.Getenv("PORT"); got != "7000" {
		t.Fatalf("existing env must win, got %q", got)
	}
	if got := os.Getenv("DOG_API_KEY_HEADER"); got != "X-Key" {
		t.Fatalf("expected value from .env, got %q", got)
	}
}

func TestLoadDogAPI(t *testing.T) {
	clearEnv(t)

	d, err := LoadDogAPI()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.BaseURL != defaultDogAPIURL || d.KeyHeader != "x-api-key" || d.Timeout != 10*time.Second || d.APIKey != "" {
		t.Fatalf("unexpected defaults: %+v", d)
	}

	t.Setenv("VITE_DOG_API_KEY", "legacy")
	t.Setenv("DOG_API_TIMEOUT", "3s")
	d, err = LoadDogAPI()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.APIKey != "legacy" || d.Timeout != 3*time.Second {
		t.Fatalf("unexpected env values: %+v", d)
	}

	t.Setenv("DOG_API_TIMEOUT", "soon")
	if _, err := LoadDogAPI(); err == nil {
		t.Fatalf("expected error for invalid DOG_API_TIMEOUT")
	}
}
