// Package db handles database connection, migration, and seeding.
package db

import (
	"fmt"

	"github.com/media-code-now/launchcheck-pro/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds a MySQL DSN from database settings.
func DSN(cfg config.DatabaseConfig) string {
	user := cfg.User
	if user == "" {
		user = "root"
	}
	cred := user
	if cfg.Password != "" {
		cred = user + ":" + cfg.Password
	}
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?parseTime=true", cred, cfg.Host, cfg.Port, cfg.Name)
}

// Connect opens a GORM connection per the configured driver.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	switch cfg.Driver {
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.Path), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("db: open sqlite %s: %w", cfg.Path, err)
		}
		return db, nil
	case "mysql":
		db, err := gorm.Open(mysql.Open(DSN(cfg)), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("db: connect to %s:%d/%s: %w", cfg.Host, cfg.Port, cfg.Name, err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("db: unsupported driver %q", cfg.Driver)
	}
}
