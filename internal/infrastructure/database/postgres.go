package database

import (
	"fmt"
	"log"

	"github.com/serviflow/serviflow-api/internal/config"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// User-related entities
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},
		&entity.UserPreferences{},

		// Master data
		&entity.Country{},
		&entity.City{},
		&entity.Sector{},

		// Company profile
		&entity.CompanyProfile{},

		// CRM entities
		&entity.Client{},
		&entity.Provider{},
		&entity.CatalogItem{},

		// Document entities
		&entity.Quotation{},
		&entity.QuotationLineItem{},
		&entity.Collection{},
		&entity.CollectionLineItem{},
		&entity.CuentaCobro{},
		&entity.CuentaCobroLineItem{},
		&entity.ClauseTemplate{},
		&entity.Contract{},
		&entity.ContractClause{},

		// Calendar
		&entity.Task{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
