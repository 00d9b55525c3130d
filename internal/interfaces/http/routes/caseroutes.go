package routes

import (
	"github.com/gin-gonic/gin"

	"casefile/internal/interfaces/http/handlers"
	"casefile/internal/interfaces/http/middleware"
)

type CaseRouteConfig struct {
	CaseHandler    *handlers.CaseHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupCaseRoutes(engine *gin.Engine, config *CaseRouteConfig) {
	cases := engine.Group("/api/cases")
	cases.Use(config.AuthMiddleware.RequireAuth())
	{
		cases.POST("", config.CaseHandler.CreateCase)
		cases.GET("", config.CaseHandler.ListCases)

		cases.POST("/:id/attachments", config.CaseHandler.AddAttachment)
		cases.GET("/:id/attachments", config.CaseHandler.ListAttachments)

		cases.GET("/:id", config.CaseHandler.GetCase)
		cases.PUT("/:id", config.CaseHandler.UpdateCase)
	}
}
