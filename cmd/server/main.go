// @title           E&S Decorations Backend API
// @version         1.0
// @description     Contact, careers and catalogue backend for the E&S Decorations website

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer ` prefix
package main

import (
	"fmt"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"esweb-http-service/internal/app/routes"
	"esweb-http-service/internal/domain/models"
	"esweb-http-service/internal/domain/services/container"
	"esweb-http-service/internal/infrastructure/config"
	"esweb-http-service/internal/infrastructure/database"
	"esweb-http-service/pkg/logger"
)

func main() {
	if err := logger.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	// Environment variables may also come from the process environment, so
	// a missing .env file is not fatal
	if err := godotenv.Load(); err != nil {
		logger.Warning("no .env file loaded: %v", err)
	} else {
		logger.Info("loaded .env file")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		logger.Error("failed to connect to database: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.ConfigurePool(); err != nil {
		logger.Error("failed to configure connection pool: %v", err)
		os.Exit(1)
	}

	db := pool.GetDB()
	if err := autoMigrate(db); err != nil {
		logger.Error("database migration failed: %v", err)
		os.Exit(1)
	}

	if err := ensureAdminExists(db, cfg); err != nil {
		logger.Error("failed to seed default admin: %v", err)
		os.Exit(1)
	}

	redisClient := newRedisClient(cfg)
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)

	r := routes.SetupRouter(cfg, serviceContainer)

	port := cfg.ServerPort
	if port == "" {
		port = "8080"
	}

	logger.Info("server listening on http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		logger.Error("server exited: %v", err)
		os.Exit(1)
	}
}

// autoMigrate adds new tables and columns for every model. Existing columns
// are never dropped or altered.
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Contact{},
		&models.Admin{},
		&models.FAQ{},
		&models.LatestWork{},
		&models.JobListing{},
		&models.JobApplication{},
	)
}

// ensureAdminExists seeds the configured default admin account so the
// console is reachable on a fresh database
func ensureAdminExists(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.DefaultAdminPassword == "" {
		logger.Warning("ADMIN_EMAIL or DEFAULT_ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var count int64
	if err := db.Model(&models.Admin{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Name:     "Admin",
		Email:    cfg.AdminEmail,
		Password: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("seeded default admin account %s", cfg.AdminEmail)
	return nil
}

// newRedisClient builds the cache client, or returns nil when Redis is not
// configured. The service layer treats a nil client as cache disabled.
func newRedisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisHost == "" {
		logger.Info("REDIS_HOST not set, response cache disabled")
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})
}
