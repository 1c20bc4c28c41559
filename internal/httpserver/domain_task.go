package httpserver

import (
	"context"

	"todo-weather/internal/middleware"
	taskHTTP "todo-weather/internal/task/delivery/http"
	taskRepo "todo-weather/internal/task/repository/sqlite"
	"todo-weather/internal/task/state"
	taskUC "todo-weather/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := taskRepo.New(srv.db, srv.l, srv.dateMath)

	// 2. UseCase and display state
	uc := taskUC.New(srv.l, repo, srv.dateMath)
	srv.taskState = state.New(srv.l, uc, srv.dateMath.Location())

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc, srv.taskState, srv.dateMath)

	// 4. Routes: registers /api/v1/tasks and /api/v1/filter
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
