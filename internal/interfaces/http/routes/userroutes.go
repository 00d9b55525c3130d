package routes

import (
	"github.com/gin-gonic/gin"

	"casefile/internal/interfaces/http/handlers"
	"casefile/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	api := engine.Group("/api")
	api.Use(config.AuthMiddleware.RequireAuth())
	{
		api.GET("/me", config.UserHandler.Me)
		// Legacy alias kept for older clients.
		api.GET("/user", config.UserHandler.Me)
		api.PUT("/me/profile", config.UserHandler.CompleteProfile)
	}
}
