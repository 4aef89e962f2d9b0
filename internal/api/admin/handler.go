package adminapi

import (
	"net/http"
	"time"

	"portfolio-app/database"
	"portfolio-app/internal/domain/contact"
	"portfolio-app/internal/domain/works"

	"github.com/gin-gonic/gin"
)

type AdminStats struct {
	TotalMessages  int `json:"total_messages"`
	UnreadMessages int `json:"unread_messages"`
	RecentMessages int `json:"recent_messages"`
	TotalProjects  int `json:"total_projects"`
	TotalCerts     int `json:"total_certificates"`
	TotalSkills    int `json:"total_skills"`
}

func AdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the admin dashboard 👑",
	})
}

// ------------------------------
// GET /admin/stats
// ------------------------------
func GetAdminStats(c *gin.Context) {
	var stats AdminStats

	var totalMessages, unreadMessages, recentMessages int64
	var totalProjects, totalCerts, totalSkills int64

	database.DB.Model(&contact.ContactMessage{}).Count(&totalMessages)
	database.DB.Model(&contact.ContactMessage{}).Where("is_read = ?", false).Count(&unreadMessages)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&contact.ContactMessage{}).
		Where("created_at >= ?", thirtyDaysAgo).
		Count(&recentMessages)

	database.DB.Model(&works.Project{}).Count(&totalProjects)
	database.DB.Model(&works.Certificate{}).Count(&totalCerts)
	database.DB.Model(&works.Skill{}).Count(&totalSkills)

	stats.TotalMessages = int(totalMessages)
	stats.UnreadMessages = int(unreadMessages)
	stats.RecentMessages = int(recentMessages)
	stats.TotalProjects = int(totalProjects)
	stats.TotalCerts = int(totalCerts)
	stats.TotalSkills = int(totalSkills)

	c.JSON(http.StatusOK, stats)
}
