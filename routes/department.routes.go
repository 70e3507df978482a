package routes

import (
	"mediplus/internal/controllers"
	"mediplus/internal/middleware"
	"mediplus/internal/validation"

	"github.com/gin-gonic/gin"
)

func RegisterDepartmentRoutes(router *gin.Engine, departmentController *controllers.DepartmentController) {
	departmentRoutes := router.Group("/api/departments")
	{
		departmentRoutes.GET("/", departmentController.GetDepartments)
		departmentRoutes.GET("/:department_id",
			validation.IDParam("department_id", "Department ID"),
			departmentController.GetDepartmentByID)
		departmentRoutes.POST("/",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(middleware.AdminAndAbove...),
			validation.CreateDepartmentValidator(),
			departmentController.CreateDepartment)
		departmentRoutes.PATCH("/:department_id",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(middleware.AdminAndAbove...),
			validation.IDParam("department_id", "Department ID"),
			validation.UpdateDepartmentValidator(),
			departmentController.UpdateDepartment)
		departmentRoutes.DELETE("/:department_id",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(middleware.AdminAndAbove...),
			validation.IDParam("department_id", "Department ID"),
			departmentController.DeleteDepartment)
	}
}
