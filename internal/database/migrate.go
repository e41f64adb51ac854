package database

import (
	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every collection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Experience{},
		&models.Education{},
		&models.Achievement{},
		&models.Review{},
	)
}
