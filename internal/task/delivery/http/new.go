package http

import (
	"todo-weather/internal/task"
	"todo-weather/internal/task/state"
	"todo-weather/pkg/datemath"
	"todo-weather/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       task.UseCase
	holder   *state.Holder
	dateMath *datemath.Parser
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase, holder *state.Holder, dateMath *datemath.Parser) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		holder:   holder,
		dateMath: dateMath,
	}
}
