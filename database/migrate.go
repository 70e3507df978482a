package database

import (
	"log"
	"mediplus/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.ImageGallery{},
		&models.Blog{},
		&models.BlogDetail{},
		&models.Tag{},
		&models.BlogDetailTag{},
		&models.BlogDetailImage{},
		&models.RelatedBlogPost{},
		&models.Department{},
		&models.FAQ{},
		&models.Service{},
		&models.Testimonial{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
