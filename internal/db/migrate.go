package db

import (
	"fmt"

	"github.com/media-code-now/launchcheck-pro/internal/models"
	"gorm.io/gorm"
)

// AllModels returns the list of all GORM models for migration.
func AllModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Project{},
		&models.ChecklistTemplate{},
		&models.ChecklistItemTemplate{},
		&models.ChecklistInstance{},
		&models.ChecklistItemInstance{},
	}
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}

// Reset drops all tables and re-creates them. Intended for dev and test
// databases only.
func Reset(db *gorm.DB) error {
	// Drop in reverse dependency order.
	all := AllModels()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("db: drop table: %w", err)
		}
	}
	return AutoMigrate(db)
}
