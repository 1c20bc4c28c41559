package http

import (
	"todo-weather/internal/weather"
	"todo-weather/pkg/log"
)

type handler struct {
	l  log.Logger
	uc weather.UseCase
}

// New creates a new HTTP handler for the weather widget.
func New(l log.Logger, uc weather.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
