package routes

import (
	adminapi "portfolio-app/internal/api/admin"
	authapi "portfolio-app/internal/api/auth"
	contactapi "portfolio-app/internal/api/contact"
	imagesapi "portfolio-app/internal/api/images"
	profileapi "portfolio-app/internal/api/profile"
	"portfolio-app/internal/api/skills"
	siteapi "portfolio-app/internal/api/site"
	worksapi "portfolio-app/internal/api/works"
	"portfolio-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Maintenance status must stay reachable while the guard is on.
	r.GET("/settings", siteapi.GetSettings)

	// Public site content; hidden entirely while maintenance mode is on.
	public := r.Group("/")
	public.Use(middleware.MaintenanceGuard())
	public.GET("/profile", profileapi.GetProfile)
	public.GET("/about", profileapi.GetAbout)
	public.GET("/projects", worksapi.ListProjects)
	public.GET("/certificates", worksapi.ListCertificates)
	public.GET("/skills", skills.ListSkills)
	public.GET("/contact-info", contactapi.GetContactInfo)
	public.GET("/resume", siteapi.GetResume)

	// ✅ Apply input sanitization to public write routes only
	submit := public.Group("/")
	submit.Use(middleware.SanitizeAndCleanInputMiddleware())
	submit.POST("/contact", contactapi.SubmitMessage)

	r.POST("/login", authapi.Login)
	r.GET("/auth/google", authapi.GoogleStart)
	r.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.POST("/change-password", authapi.ChangePassword)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/stats", adminapi.GetAdminStats)

	admin.PUT("/profile", profileapi.UpdateProfile)
	admin.PUT("/about", profileapi.UpdateAbout)

	admin.POST("/projects", worksapi.CreateProject)
	admin.PUT("/projects/reorder", worksapi.ReorderProjects)
	admin.PUT("/projects/:id", worksapi.UpdateProject)
	admin.DELETE("/projects/:id", worksapi.DeleteProject)

	admin.POST("/certificates", worksapi.CreateCertificate)
	admin.PUT("/certificates/:id", worksapi.UpdateCertificate)
	admin.DELETE("/certificates/:id", worksapi.DeleteCertificate)

	admin.POST("/skills", skills.CreateSkill)
	admin.PUT("/skills/:id", skills.UpdateSkill)
	admin.DELETE("/skills/:id", skills.DeleteSkill)

	admin.PUT("/contact-info", contactapi.UpdateContactInfo)
	admin.GET("/messages", contactapi.ListMessages)
	admin.PUT("/messages/:id/read", contactapi.MarkMessageRead)
	admin.DELETE("/messages/:id", contactapi.DeleteMessage)

	admin.PUT("/settings", siteapi.UpdateSettings)
	admin.PUT("/resume", siteapi.UpdateResume)
	admin.POST("/resume/file", siteapi.UploadResumeFile)
	admin.DELETE("/resume/file", siteapi.DeleteResumeFile)

	admin.GET("/images/:kind/:id", imagesapi.GetImage)
	admin.POST("/images/:kind/:id", imagesapi.UploadImage)
	admin.POST("/images/:kind/:id/crop", imagesapi.CropImage)
	admin.DELETE("/images/:kind/:id", imagesapi.DeleteImage)
	admin.PUT("/images/:kind/:id/url", imagesapi.SetImageURL)
	admin.PUT("/images/:kind/:id/local", imagesapi.SetImageLocal)
}
