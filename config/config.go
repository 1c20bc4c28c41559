package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Storage
	Database DatabaseConfig

	// Todo Weather specifics
	Timezone string
	Weather  WeatherConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int // 0 disables rate limiting
}

type DatabaseConfig struct {
	Path string // ":memory:" for a throwaway database
}

type WeatherConfig struct {
	APIKey          string
	BaseURL         string
	Timeout         time.Duration
	CacheTTL        time.Duration
	DefaultLocation string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/todo-weather/.
// A .env file in the working directory is loaded into the environment first.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/todo-weather/")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Storage
	cfg.Database.Path = v.GetString("database.path")

	// Todo Weather specifics
	cfg.Timezone = v.GetString("timezone")
	cfg.Weather.APIKey = v.GetString("weather.api_key")
	if apiKey := v.GetString("weather_api_key"); apiKey != "" {
		cfg.Weather.APIKey = apiKey
	}
	cfg.Weather.BaseURL = v.GetString("weather.base_url")
	cfg.Weather.Timeout = v.GetDuration("weather.timeout")
	cfg.Weather.CacheTTL = v.GetDuration("weather.cache_ttl")
	cfg.Weather.DefaultLocation = v.GetString("weather.default_location")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.host", "127.0.0.1")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 600)

	v.SetDefault("database.path", "~/.todo-weather/todo.db")
	v.SetDefault("timezone", "Africa/Johannesburg")

	v.SetDefault("weather.base_url", "https://api.weatherapi.com/v1")
	v.SetDefault("weather.timeout", "10s")
	v.SetDefault("weather.cache_ttl", "15m")
	v.SetDefault("weather.default_location", "Johannesburg")
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d is out of range", cfg.HTTPServer.Port)
	}
	if cfg.Database.Path == "" {
		return errors.New("database.path is required")
	}
	if cfg.Weather.CacheTTL <= 0 {
		return fmt.Errorf("weather.cache_ttl must be positive, got %s", cfg.Weather.CacheTTL)
	}
	if cfg.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("rate_limit.requests_per_min must not be negative, got %d", cfg.RateLimit.RequestsPerMin)
	}
	return nil
}
