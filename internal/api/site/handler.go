package siteapi

import (
	"net/http"
	"path/filepath"
	"strings"

	"portfolio-app/database"
	"portfolio-app/internal/assets"
	"portfolio-app/internal/domain/site"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// resumeStore holds resume files; wired in main via Setup.
var resumeStore assets.ObjectStore

func Setup(store assets.ObjectStore) {
	resumeStore = store
}

type UpdateSettingsRequest struct {
	MaintenanceMode *bool `json:"maintenance_mode"`
}

type UpdateResumeRequest struct {
	Title *string `json:"title"`
}

// GET /settings
func GetSettings(c *gin.Context) {
	var settings site.SiteSettings
	if err := database.DB.First(&settings, "id = ?", site.SettingsSingletonID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// PUT /settings (admin, maintenance toggle)
func UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.MaintenanceMode == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	if err := database.DB.Model(&site.SiteSettings{}).
		Where("id = ?", site.SettingsSingletonID).
		Update("maintenance_mode", *req.MaintenanceMode).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /resume
func GetResume(c *gin.Context) {
	var resume site.Resume
	if err := database.DB.First(&resume, "id = ?", site.ResumeSingletonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load resume"})
		return
	}
	c.JSON(http.StatusOK, resume)
}

// PUT /resume (admin)
func UpdateResume(c *gin.Context) {
	var req UpdateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	if err := database.DB.Model(&site.Resume{}).
		Where("id = ?", site.ResumeSingletonID).
		Update("title", *req.Title).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update resume"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// POST /resume/file (admin, multipart "file")
//
// The object key is the resume singleton id plus the original extension,
// so replacing the file overwrites rather than accumulates.
func UploadResumeFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	if ext == "" {
		ext = "pdf"
	}
	key := site.ResumeSingletonID + "." + ext

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error opening the file"})
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if err := resumeStore.Upload(c.Request.Context(), key, src, contentType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading the file"})
		return
	}

	url := resumeStore.PublicURL(key)
	if url == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get public URL for the uploaded file"})
		return
	}

	if err := database.DB.Model(&site.Resume{}).
		Where("id = ?", site.ResumeSingletonID).
		Update("file_path", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save resume file path"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"file_path": url})
}

// DELETE /resume/file (admin)
//
// The storage delete runs first; the record keeps its path when the delete
// fails, matching the image pipeline's policy.
func DeleteResumeFile(c *gin.Context) {
	var resume site.Resume
	if err := database.DB.First(&resume, "id = ?", site.ResumeSingletonID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load resume"})
		return
	}
	if resume.FilePath == "" {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	key := resume.FilePath[strings.LastIndex(resume.FilePath, "/")+1:]
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file path"})
		return
	}

	if err := resumeStore.Remove(c.Request.Context(), key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting file"})
		return
	}

	if err := database.DB.Model(&site.Resume{}).
		Where("id = ?", site.ResumeSingletonID).
		Update("file_path", "").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear resume file path"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
