package config

import (
	"fmt"
	"log"
	"os"

	"restaurant-menu-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// AdminKey is the shared secret required on mutating requests.
var AdminKey string

// LoadEnv reads .env (if present) and resolves the admin key.
func LoadEnv() {
	_ = godotenv.Load()
	AdminKey = getEnv("ADMIN_KEY", "gourmet_haven_admin_2025")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Port the HTTP server listens on.
func Port() string {
	return getEnv("PORT", "8080")
}

// MenuURL is the public address of the client's menu view; it is the
// payload of the generated QR code.
func MenuURL() string {
	host := getEnv("PUBLIC_HOST", "localhost")
	port := getEnv("FRONTEND_PORT", "5173")
	return fmt.Sprintf("http://%s:%s/menu", host, port)
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "restaurant_menu.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := DB.AutoMigrate(&models.MenuItem{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
