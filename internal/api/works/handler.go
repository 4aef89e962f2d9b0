package works

import (
	"net/http"

	"portfolio-app/database"
	imagesapi "portfolio-app/internal/api/images"
	"portfolio-app/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ------------------------------
// GET /projects (ordered for the public slider)
// ------------------------------
func ListProjects(c *gin.Context) {
	var projects []works.Project
	err := database.DB.
		Order("position ASC NULLS LAST, created_at ASC").
		Find(&projects).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// ------------------------------
// POST /projects (admin)
// ------------------------------
func CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// new projects go to the end of the slider
		var maxPos *int
		if err := tx.Model(&works.Project{}).
			Select("MAX(position)").
			Scan(&maxPos).Error; err != nil {
			return err
		}
		next := 0
		if maxPos != nil {
			next = *maxPos + 1
		}

		p := works.Project{
			Title:        req.Title,
			Description:  req.Description,
			Technologies: datatypes.NewJSONSlice(req.Technologies),
			GithubLink:   req.GithubLink,
			LiveLink:     req.LiveLink,
			Image:        req.Image,
			ImageWidth:   req.ImageWidth,
			ImageHeight:  req.ImageHeight,
			Position:     &next,
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}

		c.JSON(http.StatusCreated, gin.H{"id": p.ID})
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project", "details": err.Error()})
	}
}

// ------------------------------
// PUT /projects/:id (admin)
// ------------------------------
func UpdateProject(c *gin.Context) {
	id := c.Param("id")

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Technologies != nil {
		updates["technologies"] = datatypes.NewJSONSlice(*req.Technologies)
	}
	if req.GithubLink != nil {
		updates["github_link"] = *req.GithubLink
	}
	if req.LiveLink != nil {
		updates["live_link"] = *req.LiveLink
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.ImageWidth != nil {
		updates["image_width"] = *req.ImageWidth
	}
	if req.ImageHeight != nil {
		updates["image_height"] = *req.ImageHeight
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	res := database.DB.Model(&works.Project{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project", "details": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /projects/:id (admin)
// ------------------------------
//
// Removes the project's managed blob before the row so the bucket never
// accumulates orphans. A failed blob delete aborts and keeps the row.
func DeleteProject(c *gin.Context) {
	id := c.Param("id")

	var p works.Project
	if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if p.Image != nil {
		if err := imagesapi.RemoveManagedBlob(c, *p.Image); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project image", "details": err.Error()})
			return
		}
	}

	res := database.DB.Delete(&works.Project{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// PUT /projects/reorder (admin, drag-and-drop order)
// ------------------------------
func ReorderProjects(c *gin.Context) {
	var req ReorderProjectsRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.ProjectIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project_ids required"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for i, projectID := range req.ProjectIDs {
			if err := tx.Model(&works.Project{}).
				Where("id = ?", projectID).
				Update("position", i).Error; err != nil {
				return err
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder projects", "details": err.Error()})
	}
}

// ------------------------------
// GET /certificates
// ------------------------------
func ListCertificates(c *gin.Context) {
	var certs []works.Certificate
	err := database.DB.Order("created_at DESC").Find(&certs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load certificates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"certificates": certs})
}

// ------------------------------
// POST /certificates (admin)
// ------------------------------
func CreateCertificate(c *gin.Context) {
	var req CreateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cert := works.Certificate{
		Title:       req.Title,
		Issuer:      req.Issuer,
		Date:        req.Date,
		Description: req.Description,
		Link:        req.Link,
		Image:       req.Image,
	}
	if err := database.DB.Create(&cert).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create certificate", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": cert.ID})
}

// ------------------------------
// PUT /certificates/:id (admin)
// ------------------------------
func UpdateCertificate(c *gin.Context) {
	id := c.Param("id")

	var req UpdateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Issuer != nil {
		updates["issuer"] = *req.Issuer
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	res := database.DB.Model(&works.Certificate{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update certificate", "details": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /certificates/:id (admin)
// ------------------------------
func DeleteCertificate(c *gin.Context) {
	id := c.Param("id")

	var cert works.Certificate
	if err := database.DB.First(&cert, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found"})
		return
	}
	if cert.Image != nil {
		if err := imagesapi.RemoveManagedBlob(c, *cert.Image); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete certificate image", "details": err.Error()})
			return
		}
	}

	res := database.DB.Delete(&works.Certificate{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete certificate"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
