package main

import (
	"fmt"
	"log"
	"time"

	"github.com/usman-51/Dream-shop/models"
	"github.com/usman-51/Dream-shop/pkg/config"
	"github.com/usman-51/Dream-shop/pkg/database"
	"github.com/usman-51/Dream-shop/pkg/logger"
	"github.com/usman-51/Dream-shop/pkg/session"
	"github.com/usman-51/Dream-shop/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Mode); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()

	db, err := database.InitPostgres(cfg.Postgres)
	if err != nil {
		zap.S().Fatalf("DB connection failed: %v", err)
	}

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Account{},
		&models.Category{},
		&models.Product{},
		&models.Variation{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		zap.S().Fatalf("AutoMigrate failed: %v", err)
	}

	rdb, err := database.InitRedis(cfg.Redis)
	if err != nil {
		zap.S().Fatalf("Redis connection failed: %v", err)
	}
	sessions := session.NewStore(rdb, time.Duration(cfg.Session.TTLHours)*time.Hour)

	// Gin setup
	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, db, sessions, cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zap.S().Infof("Server running on %s", addr)
	if err := r.Run(addr); err != nil {
		zap.S().Fatalf("Failed to start server: %v", err)
	}
}
