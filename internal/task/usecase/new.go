package usecase

import (
	"time"

	"todo-weather/internal/task/repository"
	"todo-weather/pkg/datemath"
	pkgLog "todo-weather/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, dateMath *datemath.Parser) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		now:      time.Now,
	}
}
