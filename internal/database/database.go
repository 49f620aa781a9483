package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brickprod/callsheet-api/internal/models"
)

// Connect opens the Postgres handle without pinging it. Connections are
// established lazily per operation, so an unreachable database at startup
// still leaves the handle usable once the store recovers.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
}

// Probe is the one startup connectivity check. Failure is a warning for the
// caller, never fatal: requests serve via the in-memory fallback instead.
func Probe(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.CallSheet{},
		&models.Template{},
		&models.TeamMember{},
	)
}

// Close releases the underlying connection pool on shutdown.
func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
