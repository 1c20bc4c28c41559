package usecase

import (
	"sync"
	"time"

	"todo-weather/internal/weather"
	"todo-weather/internal/weather/repository"
	pkgLog "todo-weather/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	cache  repository.CacheRepository
	remote repository.RemoteRepository
	opts   weather.Options
	now    func() time.Time

	mu           sync.Mutex
	lastLocation string
}

// New creates a new weather UseCase instance.
func New(l pkgLog.Logger, cache repository.CacheRepository, remote repository.RemoteRepository, opts weather.Options) *implUseCase {
	return &implUseCase{
		l:      l,
		cache:  cache,
		remote: remote,
		opts:   opts.WithDefaults(),
		now:    time.Now,
	}
}
