package main

import (
	"flag"
	"log"
	"os"

	"mediplus/database"
	"mediplus/internal/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	adminEmail := flag.String("admin-email", os.Getenv("ADMIN_EMAIL"), "email for the seeded admin account")
	adminPassword := flag.String("admin-password", os.Getenv("ADMIN_PASSWORD"), "password for the seeded admin account")
	withContent := flag.Bool("with-content", true, "seed starter departments, FAQs, services and testimonials")
	flag.Parse()

	if *adminEmail == "" || *adminPassword == "" {
		log.Fatal("admin email and password are required (flags or ADMIN_EMAIL/ADMIN_PASSWORD)")
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	if err := utils.SeedAdminUser(database.DB, *adminEmail, *adminPassword); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	if *withContent {
		if err := utils.SeedSampleContent(database.DB); err != nil {
			log.Fatalf("Failed to seed sample content: %v", err)
		}
	}

	log.Println("Seeding finished")
}
