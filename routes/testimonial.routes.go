package routes

import (
	"mediplus/internal/controllers"
	"mediplus/internal/middleware"
	"mediplus/internal/validation"

	"github.com/gin-gonic/gin"
)

func RegisterTestimonialRoutes(router *gin.Engine, testimonialController *controllers.TestimonialController) {
	testimonialRoutes := router.Group("/api/testimonials")
	{
		testimonialRoutes.GET("/", testimonialController.GetTestimonials)
		testimonialRoutes.GET("/:testimonial_id",
			validation.IDParam("testimonial_id", "Testimonial ID"),
			testimonialController.GetTestimonialByID)
		testimonialRoutes.POST("/",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(middleware.AdminAndAbove...),
			validation.TestimonialValidator(),
			testimonialController.CreateTestimonial)
		testimonialRoutes.PATCH("/:testimonial_id",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(middleware.AdminAndAbove...),
			validation.IDParam("testimonial_id", "Testimonial ID"),
			validation.TestimonialValidator(),
			testimonialController.UpdateTestimonial)
		testimonialRoutes.DELETE("/:testimonial_id",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(middleware.AdminAndAbove...),
			validation.IDParam("testimonial_id", "Testimonial ID"),
			testimonialController.DeleteTestimonial)
	}
}
