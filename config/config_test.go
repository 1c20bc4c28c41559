package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func newTestViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("config")
	dir := t.TempDir()
	v.AddConfigPath(dir)
	if yaml != "" {
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(newTestViper(t, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Database.Path != "~/.todo-weather/todo.db" {
		t.Errorf("unexpected database path %q", cfg.Database.Path)
	}
	if cfg.Timezone != "Africa/Johannesburg" {
		t.Errorf("unexpected timezone %q", cfg.Timezone)
	}
	if cfg.Weather.CacheTTL != 15*time.Minute {
		t.Errorf("expected 15m cache ttl, got %s", cfg.Weather.CacheTTL)
	}
	if cfg.Weather.DefaultLocation != "Johannesburg" {
		t.Errorf("unexpected default location %q", cfg.Weather.DefaultLocation)
	}
	if cfg.Weather.APIKey != "" {
		t.Errorf("expected no api key by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	yaml := `
http_server:
  port: 9090
database:
  path: ":memory:"
weather:
  api_key: file-key
  cache_ttl: 5m
  default_location: Cape Town
`
	cfg, err := load(newTestViper(t, yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Database.Path != ":memory:" {
		t.Errorf("unexpected database path %q", cfg.Database.Path)
	}
	if cfg.Weather.APIKey != "file-key" {
		t.Errorf("unexpected api key %q", cfg.Weather.APIKey)
	}
	if cfg.Weather.CacheTTL != 5*time.Minute {
		t.Errorf("expected 5m cache ttl, got %s", cfg.Weather.CacheTTL)
	}
	if cfg.Weather.DefaultLocation != "Cape Town" {
		t.Errorf("unexpected default location %q", cfg.Weather.DefaultLocation)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "env-key")
	t.Setenv("HTTP_SERVER_PORT", "7070")

	cfg, err := load(newTestViper(t, "weather:\n  api_key: file-key\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Weather.APIKey != "env-key" {
		t.Errorf("expected env api key, got %q", cfg.Weather.APIKey)
	}
	if cfg.HTTPServer.Port != 7070 {
		t.Errorf("expected port 7070, got %d", cfg.HTTPServer.Port)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "Port Out Of Range", yaml: "http_server:\n  port: 70000\n"},
		{name: "Empty Database Path", yaml: "database:\n  path: \"\"\n"},
		{name: "Zero Cache TTL", yaml: "weather:\n  cache_ttl: 0s\n"},
		{name: "Negative Rate Limit", yaml: "rate_limit:\n  requests_per_min: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := load(newTestViper(t, tt.yaml)); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	if _, err := load(newTestViper(t, "http_server: [unterminated\n")); err == nil {
		t.Errorf("expected parse error")
	}
}
