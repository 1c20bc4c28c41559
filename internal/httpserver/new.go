package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"todo-weather/internal/task/state"
	"todo-weather/internal/weather"
	"todo-weather/pkg/datemath"
	"todo-weather/pkg/log"
	pkgWeather "todo-weather/pkg/weatherapi"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	rateLimit   int

	// Storage
	db       *sql.DB
	dateMath *datemath.Parser

	// Weather domain
	weatherClient  *pkgWeather.Client
	weatherOptions weather.Options

	// Set by registerDomainRoutes
	taskState *state.Holder
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Host            string
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	DB       *sql.DB
	DateMath *datemath.Parser

	// WeatherClient may be nil when no API key is configured.
	WeatherClient  *pkgWeather.Client
	WeatherOptions weather.Options
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		host:           cfg.Host,
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		rateLimit:      cfg.RateLimitPerMin,
		db:             cfg.DB,
		dateMath:       cfg.DateMath,
		weatherClient:  cfg.WeatherClient,
		weatherOptions: cfg.WeatherOptions,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.dateMath == nil {
		return errors.New("date math parser is required")
	}
	return nil
}
