package routes

import (
	"mediplus/internal/controllers"
	"mediplus/internal/middleware"
	"mediplus/internal/validation"

	"github.com/gin-gonic/gin"
)

func RegisterFAQRoutes(router *gin.Engine, faqController *controllers.FAQController) {
	faqRoutes := router.Group("/api/faqs")
	{
		faqRoutes.GET("/", faqController.GetFaqs)
		faqRoutes.GET("/:faq_id",
			validation.IDParam("faq_id", "FAQ ID"),
			faqController.GetFaqByID)
		faqRoutes.POST("/",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(middleware.AdminAndAbove...),
			validation.FAQValidator(),
			faqController.CreateFaq)
		faqRoutes.PATCH("/:faq_id",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(middleware.AdminAndAbove...),
			validation.IDParam("faq_id", "FAQ ID"),
			validation.FAQValidator(),
			faqController.UpdateFaq)
		faqRoutes.DELETE("/:faq_id",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(middleware.AdminAndAbove...),
			validation.IDParam("faq_id", "FAQ ID"),
			faqController.DeleteFaq)
	}
}
