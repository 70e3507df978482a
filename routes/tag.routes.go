package routes

import (
	"mediplus/internal/controllers"
	"mediplus/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterTagRoutes(router *gin.Engine, tagController *controllers.TagController) {
	router.GET("/api/blog-tags",
		middleware.AuthMiddleware(),
		middleware.RequireRoles(middleware.AdminAndAbove...),
		tagController.GetAllTags)
}
