package middleware

import (
	"net/http"

	"portfolio-app/database"
	"portfolio-app/internal/domain/site"

	"github.com/gin-gonic/gin"
)

// MaintenanceGuard hides public content while maintenance mode is on.
// Admin routes are registered outside this guard and keep working, which is
// how the admin turns the mode back off.
func MaintenanceGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings site.SiteSettings
		if err := database.DB.First(&settings, "id = ?", site.SettingsSingletonID).Error; err != nil {
			// If the settings row is unreadable the site stays up.
			c.Next()
			return
		}

		if settings.MaintenanceMode {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "Site is under maintenance",
			})
			return
		}

		c.Next()
	}
}
