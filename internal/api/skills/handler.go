package skills

import (
	"net/http"

	"portfolio-app/database"
	"portfolio-app/internal/domain/works"

	"github.com/gin-gonic/gin"
)

type CreateSkillRequest struct {
	Category string `json:"category" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type UpdateSkillRequest struct {
	Category *string `json:"category"`
	Name     *string `json:"name"`
}

// GET /skills
func ListSkills(c *gin.Context) {
	var skills []works.Skill
	err := database.DB.Order("category ASC, name ASC").Find(&skills).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load skills"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// POST /skills (admin)
func CreateSkill(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	skill := works.Skill{Category: req.Category, Name: req.Name}
	if err := database.DB.Create(&skill).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create skill", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": skill.ID})
}

// PUT /skills/:id (admin)
func UpdateSkill(c *gin.Context) {
	id := c.Param("id")

	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	res := database.DB.Model(&works.Skill{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update skill"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DELETE /skills/:id (admin)
func DeleteSkill(c *gin.Context) {
	id := c.Param("id")

	res := database.DB.Delete(&works.Skill{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete skill"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
