package main

import (
	"log"
	"time"

	"sda-backend/config"
	"sda-backend/database"
	routes "sda-backend/internal/app/http"
	"sda-backend/internal/cache"
	"sda-backend/internal/domain/admins"
	"sda-backend/internal/uploads"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB(config.DB_URL)

	if err := admins.EnsureDefaultAdmin(database.DB, config.ADMIN_EMAIL, config.ADMIN_PASSWORD); err != nil {
		log.Fatalf("Failed to ensure default admin: %v", err)
	}

	uploads.Init(config.UPLOAD_DIR, config.RESOURCES_DIR, config.PUBLIC_BASE_URL)
	if err := uploads.EnsureDirs(config.UPLOAD_DIR, config.RESOURCES_DIR); err != nil {
		log.Fatalf("Failed to create upload directories: %v", err)
	}

	store := cache.New(config.REDIS_URL, time.Duration(config.CACHE_TTL_SECONDS)*time.Second)
	defer store.Close()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, store)

	r.Run(":" + config.PORT)
}
