package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-weather/config"
	_ "todo-weather/docs" // Swagger docs
	"todo-weather/internal/httpserver"
	"todo-weather/internal/storage/sqlite"
	"todo-weather/internal/weather"
	"todo-weather/pkg/datemath"
	"todo-weather/pkg/log"
	pkgWeather "todo-weather/pkg/weatherapi"
)

// @title       Todo Weather API
// @description Local task manager with a cached weather widget.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Todo Weather...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Server stopped with error: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Database
	db, err := sqlite.Open(ctx, cfg.Database.Path, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	// 5. Weather API client (optional)
	var weatherClient *pkgWeather.Client
	if cfg.Weather.APIKey != "" {
		weatherClient, err = pkgWeather.NewClient(pkgWeather.Config{
			APIKey:  cfg.Weather.APIKey,
			BaseURL: cfg.Weather.BaseURL,
			Timeout: cfg.Weather.Timeout,
		})
		if err != nil {
			return fmt.Errorf("weather client: %w", err)
		}
	} else {
		logger.Warn(ctx, "WEATHER_API_KEY is missing: weather refreshes will fail")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		DB:              db,
		DateMath:        dateMathParser,
		WeatherClient:   weatherClient,
		WeatherOptions: weather.Options{
			CacheTTL:        cfg.Weather.CacheTTL,
			DefaultLocation: cfg.Weather.DefaultLocation,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	// 7. Run until SIGINT/SIGTERM
	return httpServer.Run(ctx)
}
