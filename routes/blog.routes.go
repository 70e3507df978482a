package routes

import (
	"mediplus/internal/controllers"
	"mediplus/internal/middleware"
	"mediplus/internal/validation"

	"github.com/gin-gonic/gin"
)

func RegisterBlogRoutes(router *gin.Engine, blogController *controllers.BlogController) {
	blogRoutes := router.Group("/api/blogs")
	{
		blogRoutes.GET("/", blogController.GetAllBlogs)
		blogRoutes.GET("/:blog_id",
			validation.IDParam("blog_id", "Blog ID"),
			blogController.GetBlogByID)
		blogRoutes.GET("/users/:user_id",
			middleware.AuthMiddleware(),
			validation.IDParam("user_id", "User ID"),
			blogController.GetBlogsByUserID)
		blogRoutes.POST("/",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(middleware.AdminAndAbove...),
			validation.CreateBlogValidator(),
			blogController.CreateBlog)
		blogRoutes.PATCH("/:blog_id",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(middleware.AdminAndAbove...),
			validation.IDParam("blog_id", "Blog ID"),
			validation.UpdateBlogValidator(),
			blogController.UpdateBlog)
		blogRoutes.DELETE("/:blog_id",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(middleware.AdminAndAbove...),
			validation.IDParam("blog_id", "Blog ID"),
			blogController.DeleteBlog)
	}
}
