package config

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB connects to the database and returns the handle. Services receive it
// through their constructors; there is no package-level DB state.
func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		Getenv("DB_USERNAME", ""),
		Getenv("DB_PASSWORD", ""),
		Getenv("DB_HOST", "localhost"),
		Getenv("DB_PORT", "3306"),
		Getenv("DB_DATABASE", "idea_management"),
	)

	environment := strings.ToLower(Getenv("ENVIRONMENT", ""))
	debugSQL := strings.ToLower(Getenv("DEBUG_SQL", ""))

	// In production, suppress SQL logs unless explicitly re-enabled via DEBUG_SQL=true.
	logLevel := logger.Info
	if environment == "production" && debugSQL != "true" {
		logLevel = logger.Warn
	}

	cfg := &gorm.Config{
		Logger: logger.New(
			log.New(LogWriter, "\r\n", log.LstdFlags),
			logger.Config{LogLevel: logLevel},
		),
	}

	db, err := gorm.Open(mysql.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connected successfully")
	return db, nil
}
