package database

import (
	"log"

	"portfolio-app/config"
	"portfolio-app/internal/domain/contact"
	"portfolio-app/internal/domain/profile"
	"portfolio-app/internal/domain/site"
	"portfolio-app/internal/domain/users"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the singleton rows the admin forms edit in place, plus the
// admin account from the environment. Existing rows are never overwritten.
func Seed() {
	if err := DB.FirstOrCreate(&site.SiteSettings{}, site.SiteSettings{ID: site.SettingsSingletonID}).Error; err != nil {
		log.Fatal("Failed to seed site settings:", err)
	}
	if err := DB.Where("id = ?", site.ResumeSingletonID).
		Attrs(site.Resume{Title: "My Resume"}).
		FirstOrCreate(&site.Resume{ID: site.ResumeSingletonID}).Error; err != nil {
		log.Fatal("Failed to seed resume:", err)
	}
	if err := DB.FirstOrCreate(&profile.AboutMe{}, profile.AboutMe{ID: profile.AboutSingletonID}).Error; err != nil {
		log.Fatal("Failed to seed about me:", err)
	}
	if err := DB.Where("id = ?", contact.InfoSingletonID).
		Attrs(contact.ContactInfo{Email: config.ADMIN_EMAIL}).
		FirstOrCreate(&contact.ContactInfo{ID: contact.InfoSingletonID}).Error; err != nil {
		log.Fatal("Failed to seed contact info:", err)
	}

	if err := seedAdmin(DB); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}
}

func seedAdmin(db *gorm.DB) error {
	var existing users.AdminUser
	err := db.Where("email = ?", config.ADMIN_EMAIL).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	admin := users.AdminUser{
		Email:        config.ADMIN_EMAIL,
		AuthProvider: "local",
		Role:         "admin",
	}
	if config.ADMIN_PASSWORD != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(config.ADMIN_PASSWORD), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		h := string(hashed)
		admin.Password = &h
	} else {
		// No password configured: the account is Google sign-in only.
		admin.AuthProvider = "google"
	}
	return db.Create(&admin).Error
}
