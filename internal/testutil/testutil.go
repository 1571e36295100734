// Package testutil builds the API router over the in-memory repo so
// handler, client and controller tests run without Postgres or Redis.
package testutil

import (
	"todoboard/internal/app"
	"todoboard/internal/handlers"
	"todoboard/internal/repo"
	"todoboard/internal/service"

	"github.com/gin-gonic/gin"
)

// NewRouter returns a gin engine with the todo routes registered over a
// fresh in-memory store.
func NewRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	svc := service.NewTodoService(repo.NewMemoryTodoRepo(), nil)
	app.RegisterTodoRoutes(r.Group("/api"), handlers.NewTodoHandler(svc))

	return r
}
