package routes

import (
	"mediplus/internal/controllers"
	"mediplus/internal/middleware"
	"mediplus/internal/validation"

	"github.com/gin-gonic/gin"
)

func RegisterServiceRoutes(router *gin.Engine, serviceController *controllers.ServiceController) {
	serviceRoutes := router.Group("/api/services")
	{
		serviceRoutes.GET("/", serviceController.GetAllServices)
		serviceRoutes.GET("/:service_id",
			validation.IDParam("service_id", "Service ID"),
			serviceController.GetServiceByID)
		serviceRoutes.POST("/",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(middleware.AdminAndAbove...),
			validation.CreateServiceValidator(),
			serviceController.CreateService)
		serviceRoutes.PATCH("/:service_id",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(middleware.AdminAndAbove...),
			validation.IDParam("service_id", "Service ID"),
			validation.UpdateServiceValidator(),
			serviceController.UpdateService)
		serviceRoutes.DELETE("/:service_id",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(middleware.AdminAndAbove...),
			validation.IDParam("service_id", "Service ID"),
			serviceController.DeleteService)
	}
}
