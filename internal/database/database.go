package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// registers the cgo-free "sqlite" driver used below
	_ "modernc.org/sqlite"

	"usersignup/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("storage: connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	log.Println("storage: using SQLite:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}

// MigrateClient creates the tables the signup client writes to.
func MigrateClient(db *gorm.DB) error {
	return db.AutoMigrate(&domain.StorageEntry{})
}

// MigrateMockAPI creates the tables of the development registration backend.
func MigrateMockAPI(db *gorm.DB) error {
	return db.AutoMigrate(&domain.MockUser{})
}
