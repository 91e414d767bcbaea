package seed

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolio_backend/internal/model"
)

// SeedAdminUser creates the bootstrap admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Existing accounts with that email are promoted instead.
func SeedAdminUser(db *gorm.DB) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing model.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		if existing.Role != model.RoleAdmin {
			if err := db.Model(&existing).Update("role", model.RoleAdmin).Error; err != nil {
				log.Printf("Could not promote admin user: %v", err)
				return
			}
			log.Printf("Promoted %s to admin", adminEmail)
		}
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Could not hash admin password: %v", err)
		return
	}

	admin := model.User{
		Email:    adminEmail,
		Password: string(hashed),
		FullName: "Site Admin",
		Role:     model.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error creating admin user: %v", err)
		return
	}

	log.Println("Admin user seeded successfully!")
}

// SeedSponsors inserts a couple of starter banners so the public site has
// something to render on a fresh database.
func SeedSponsors(db *gorm.DB) {
	sponsors := []model.Sponsor{
		{
			Name:         "Magnatesmedia",
			LogoURL:      "https://cdn.sajjadrasool.com/sponsors/magnatesmedia.png",
			WebsiteURL:   "https://magnatesmedia.example.com",
			Description:  "Digital marketing and branding studio",
			IsActive:     true,
			DisplayOrder: 0,
		},
		{
			Name:         "Inkwell Press",
			LogoURL:      "https://cdn.sajjadrasool.com/sponsors/inkwell.png",
			WebsiteURL:   "https://inkwell.example.com",
			Description:  "Independent publishing house",
			IsActive:     true,
			DisplayOrder: 1,
		},
	}

	for _, sponsor := range sponsors {
		result := db.FirstOrCreate(&sponsor, model.Sponsor{Name: sponsor.Name})
		if result.Error != nil {
			log.Printf("Error creating sponsor %s: %v", sponsor.Name, result.Error)
		}
	}

	log.Println("Sponsors seeded successfully!")
}
