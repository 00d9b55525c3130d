package routes

import (
	"github.com/gin-gonic/gin"

	"casefile/internal/interfaces/http/handlers"
)

type AuthRouteConfig struct {
	AuthHandler     *handlers.AuthHandler
	SigninRateLimit gin.HandlerFunc
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	api := engine.Group("/api")
	{
		api.POST("/signup", config.AuthHandler.Signup)

		if config.SigninRateLimit != nil {
			api.POST("/signin", config.SigninRateLimit, config.AuthHandler.Signin)
		} else {
			api.POST("/signin", config.AuthHandler.Signin)
		}
	}
}
