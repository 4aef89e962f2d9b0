package database

import (
	"fmt"
	"log"
	"os"

	"portfolio-app/internal/domain/contact"
	"portfolio-app/internal/domain/profile"
	"portfolio-app/internal/domain/site"
	"portfolio-app/internal/domain/users"
	"portfolio-app/internal/domain/works"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// Required for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// auth
		&users.AdminUser{},

		// content
		&profile.Profile{},
		&profile.AboutMe{},
		&works.Project{},
		&works.Certificate{},
		&works.Skill{},

		// contact
		&contact.ContactInfo{},
		&contact.ContactMessage{},

		// site
		&site.SiteSettings{},
		&site.Resume{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}
