package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"mediplus/database"
	"mediplus/docs"
	"mediplus/internal/controllers"
	"mediplus/internal/repository"
	"mediplus/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Mediplus API"
	docs.SwaggerInfo.Description = "REST API for the Mediplus marketing site and admin dashboard."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Connect to database and run migrations
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Initialize repositories
	blogRepo := repository.NewBlogRepository(database.DB)
	tagRepo := repository.NewTagRepository(database.DB)
	departmentRepo := repository.NewDepartmentRepository(database.DB)
	faqRepo := repository.NewFAQRepository(database.DB)
	serviceRepo := repository.NewServiceRepository(database.DB)
	testimonialRepo := repository.NewTestimonialRepository(database.DB)

	// Initialize controllers
	blogController := controllers.NewBlogController(blogRepo)
	tagController := controllers.NewTagController(tagRepo)
	departmentController := controllers.NewDepartmentController(departmentRepo)
	faqController := controllers.NewFAQController(faqRepo)
	serviceController := controllers.NewServiceController(serviceRepo)
	testimonialController := controllers.NewTestimonialController(testimonialRepo)

	gin.SetMode(gin.ReleaseMode)
	// Setup Gin router
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:5173"
	}
	corsConfig.AllowOrigins = []string{corsOrigin}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Uploaded testimonial avatars are served as static files
	router.Static("/uploads", "./uploads")

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Mediplus API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterBlogRoutes(router, blogController)
	routes.RegisterTagRoutes(router, tagController)
	routes.RegisterDepartmentRoutes(router, departmentController)
	routes.RegisterFAQRoutes(router, faqController)
	routes.RegisterServiceRoutes(router, serviceController)
	routes.RegisterTestimonialRoutes(router, testimonialController)
	routes.RegisterSwaggerRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
