package main

import (
	"context"
	"log"
	"os"
	"time"

	"portfolio-app/config"
	"portfolio-app/database"
	imagesapi "portfolio-app/internal/api/images"
	siteapi "portfolio-app/internal/api/site"
	routes "portfolio-app/internal/app/http"
	"portfolio-app/internal/domain/media"
	"portfolio-app/internal/infra/gcs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()
	database.Seed()

	ctx := context.Background()

	imageStore, err := gcs.NewStore(ctx, config.IMAGES_BUCKET)
	if err != nil {
		log.Fatalf("Failed to connect to image storage: %v", err)
	}
	defer imageStore.Close()

	resumeStore := imageStore
	if config.RESUMES_BUCKET != config.IMAGES_BUCKET {
		resumeStore, err = gcs.NewStore(ctx, config.RESUMES_BUCKET)
		if err != nil {
			log.Fatalf("Failed to connect to resume storage: %v", err)
		}
		defer resumeStore.Close()
	}

	imagesapi.Setup(imageStore, media.Classifier{
		ManagedPrefix: imageStore.PublicPrefix(),
		LocalPrefix:   config.LOCAL_IMAGE_PREFIX,
	})
	siteapi.Setup(resumeStore)

	r := gin.Default()

	// ✅ Add CORS middleware BEFORE registering routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
