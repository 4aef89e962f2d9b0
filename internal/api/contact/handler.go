package contactapi

import (
	"net/http"

	"portfolio-app/database"
	"portfolio-app/internal/domain/contact"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubmitMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

type UpdateContactInfoRequest struct {
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Location     *string `json:"location"`
	LinkedinURL  *string `json:"linkedin_url"`
	GithubURL    *string `json:"github_url"`
	TwitterURL   *string `json:"twitter_url"`
	InstagramURL *string `json:"instagram_url"`
	WhatsappURL  *string `json:"whatsapp_url"`
	TelegramURL  *string `json:"telegram_url"`
}

type MarkReadRequest struct {
	IsRead bool `json:"is_read"`
}

// GET /contact-info
func GetContactInfo(c *gin.Context) {
	var info contact.ContactInfo
	if err := database.DB.First(&info, "id = ?", contact.InfoSingletonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact info not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contact info"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// PUT /contact-info (admin)
func UpdateContactInfo(c *gin.Context) {
	var req UpdateContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.LinkedinURL != nil {
		updates["linkedin_url"] = *req.LinkedinURL
	}
	if req.GithubURL != nil {
		updates["github_url"] = *req.GithubURL
	}
	if req.TwitterURL != nil {
		updates["twitter_url"] = *req.TwitterURL
	}
	if req.InstagramURL != nil {
		updates["instagram_url"] = *req.InstagramURL
	}
	if req.WhatsappURL != nil {
		updates["whatsapp_url"] = *req.WhatsappURL
	}
	if req.TelegramURL != nil {
		updates["telegram_url"] = *req.TelegramURL
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	if err := database.DB.Model(&contact.ContactInfo{}).
		Where("id = ?", contact.InfoSingletonID).
		Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact info", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// POST /contact (public, sanitized)
func SubmitMessage(c *gin.Context) {
	var req SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := contact.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := database.DB.Create(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	// best-effort; the message is already stored
	go notifyAdminOfMessage(msg)

	c.JSON(http.StatusCreated, gin.H{"status": "sent"})
}

// GET /messages (admin, newest first)
func ListMessages(c *gin.Context) {
	var messages []contact.ContactMessage
	err := database.DB.Order("created_at DESC").Find(&messages).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// PUT /messages/:id/read (admin)
func MarkMessageRead(c *gin.Context) {
	id := c.Param("id")

	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := database.DB.Model(&contact.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", req.IsRead)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DELETE /messages/:id (admin)
func DeleteMessage(c *gin.Context) {
	id := c.Param("id")

	res := database.DB.Delete(&contact.ContactMessage{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
