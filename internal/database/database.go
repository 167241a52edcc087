package database

import (
	"fmt"
	"os"
	"time"

	"github.com/vaibhav/lifehub-api/internal/models"
	pkgLogger "github.com/vaibhav/lifehub-api/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a connection to the PostgreSQL database
func Connect(databaseURL string) (*gorm.DB, error) {
	logLevel := logger.Silent
	if os.Getenv("ENVIRONMENT") != "production" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:                 pkgLogger.NewQueryLogger(logLevel),
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Single-user tool: the pool stays small
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate brings the schema up to date. A single-user deployment has no
// migration pipeline, so the models drive the schema directly.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Loan{},
		&models.LoanPayment{},
		&models.TimeEntry{},
		&models.Client{},
		&models.JournalEntry{},
		&models.Todo{},
		&models.Note{},
		&models.NoteCategory{},
		&models.Session{},
	)
}
