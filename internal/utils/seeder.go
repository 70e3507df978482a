package utils

import (
	"log"

	"mediplus/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser creates the dashboard admin account if it does not
// exist yet.
func SeedAdminUser(db *gorm.DB, email, password string) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Admin user %s already exists, skipping", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: string(hash),
		Role:     "admin",
		Verified: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	userName := "admin"
	color := GenerateRandomHexColor()
	profile := models.UserProfile{
		UserID:    user.ID,
		UserName:  &userName,
		UserColor: &color,
	}
	if err := db.Create(&profile).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded admin user %s (ID: %d)", email, user.ID)
	return nil
}

// SeedSampleContent fills the public pages with starter rows so a fresh
// install renders something.
func SeedSampleContent(db *gorm.DB) error {
	departments := []models.Department{
		{DepartmentName: "Cardiology", DepartmentDescription: "Heart care"},
		{DepartmentName: "Neurology", DepartmentDescription: "Brain and nervous system care"},
		{DepartmentName: "Pediatrics", DepartmentDescription: "Care for infants, children and adolescents"},
	}
	for _, d := range departments {
		if err := db.Where("department_name = ?", d.DepartmentName).FirstOrCreate(&d).Error; err != nil {
			return err
		}
	}

	faqs := []models.FAQ{
		{FaqQuestion: "Do you accept walk-in patients?", FaqAnswer: "Yes, our outpatient clinic accepts walk-ins every weekday."},
		{FaqQuestion: "Which insurance providers do you work with?", FaqAnswer: "We work with all major national providers; bring your card to registration."},
	}
	for _, f := range faqs {
		if err := db.Where("faq_question = ?", f.FaqQuestion).FirstOrCreate(&f).Error; err != nil {
			return err
		}
	}

	services := []models.Service{
		{IconClassName: "icofont-heart-beat", ServiceTitle: "General Treatment", ServiceSubtitle: "Everyday care", ServiceDescription: "Routine checkups and treatment for common conditions."},
		{IconClassName: "icofont-tooth", ServiceTitle: "Dental Care", ServiceSubtitle: "Healthy smiles", ServiceDescription: "Preventive and restorative dental services."},
	}
	for _, s := range services {
		if err := db.Where("service_title = ?", s.ServiceTitle).FirstOrCreate(&s).Error; err != nil {
			return err
		}
	}

	testimonials := []models.Testimonial{
		{TestimonialText: "The staff took care of my mother like family.", FullName: "Amanda Putri", JobTitle: "Teacher", BgColor: GenerateRandomHexColor()},
	}
	for _, t := range testimonials {
		if err := db.Where("full_name = ?", t.FullName).FirstOrCreate(&t).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Sample content seeded")
	return nil
}
