package profileapi

import (
	"net/http"

	"portfolio-app/database"
	"portfolio-app/internal/domain/profile"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Tagline      *string `json:"tagline"`
	HeroImageURL *string `json:"hero_image_url"`
}

type UpdateAboutRequest struct {
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url"`
}

// GET /profile
//
// Returns placeholder content when no profile row exists yet, so a fresh
// deployment still renders a hero section.
func GetProfile(c *gin.Context) {
	var p profile.Profile
	err := database.DB.Order("created_at ASC").First(&p).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, profile.Profile{
			FirstName: "John",
			LastName:  "Doe",
			Tagline:   "A passionate college student building innovative solutions and exploring the frontiers of technology.",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// PUT /profile (admin)
func UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var p profile.Profile
		err := tx.Order("created_at ASC").First(&p).Error
		if err == gorm.ErrRecordNotFound {
			p = profile.Profile{}
			applyProfile(&p, req)
			return tx.Create(&p).Error
		}
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.FirstName != nil {
			updates["first_name"] = *req.FirstName
		}
		if req.LastName != nil {
			updates["last_name"] = *req.LastName
		}
		if req.Tagline != nil {
			updates["tagline"] = *req.Tagline
		}
		if req.HeroImageURL != nil {
			updates["hero_image_url"] = *req.HeroImageURL
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&profile.Profile{}).Where("id = ?", p.ID).Updates(updates).Error
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func applyProfile(p *profile.Profile, req UpdateProfileRequest) {
	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.Tagline != nil {
		p.Tagline = *req.Tagline
	}
	if req.HeroImageURL != nil {
		p.HeroImageURL = *req.HeroImageURL
	}
}

// GET /about
func GetAbout(c *gin.Context) {
	var about profile.AboutMe
	if err := database.DB.First(&about, "id = ?", profile.AboutSingletonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "About content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load about content"})
		return
	}
	c.JSON(http.StatusOK, about)
}

// PUT /about (admin)
func UpdateAbout(c *gin.Context) {
	var req UpdateAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	if err := database.DB.Model(&profile.AboutMe{}).
		Where("id = ?", profile.AboutSingletonID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update about content", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
