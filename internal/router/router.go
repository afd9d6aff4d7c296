package router

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"prothink-api/internal/auth"
	"prothink-api/internal/handlers"
	"prothink-api/internal/middleware"
	"prothink-api/internal/store"
)

func Setup(r *gin.Engine, pool *pgxpool.Pool, authSvc *auth.Service) {
	hh := handlers.NewHealthHandler(pool)
	ah := handlers.NewAuthHandler(authSvc)
	eh := handlers.NewEmployeeHandler(store.NewEmployees(pool))
	th := handlers.NewTaskHandler(store.NewTasks(pool))

	// liveness, no auth
	r.GET("/", hh.Root)
	r.GET("/api/health", hh.Health)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/login", ah.Login)
	authGroup.GET("/verify", middleware.RequireAuth(authSvc), ah.Verify)

	employees := api.Group("/employees")
	employees.GET("", eh.List)
	employees.POST("", eh.Create)
	employees.GET("/:id", eh.Get)
	employees.PUT("/:id", eh.Update)
	employees.PATCH("/:id", eh.Update)
	employees.DELETE("/:id", eh.Delete)

	tasks := api.Group("/tasks")
	tasks.GET("", th.List)
	tasks.POST("", th.Create)
	tasks.GET("/:id", th.Get)
	tasks.PUT("/:id", th.Update)
	tasks.PATCH("/:id", th.Update)
	tasks.DELETE("/:id", th.Delete)
	tasks.POST("/:id/assign", th.Assign)
	tasks.POST("/:id/unassign", th.Unassign)
}
