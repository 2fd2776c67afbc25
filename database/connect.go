package database

import (
	"fmt"

	"novonexbot/state"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func Connect() (*gorm.DB, error) {
	cfg := state.State.Config

	var dialector gorm.Dialector
	switch cfg.Database.Type {
	case "sqlite", "sqlite3":
		dialector = sqlite.Open(cfg.Database.URL)
	case "postgres":
		dialector = postgres.Open(cfg.Database.URL)
	case "mysql":
		dialector = mysql.Open(cfg.Database.URL)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Database.Type)
	}

	gormConfig := &gorm.Config{}
	if cfg.SilentDbLogs {
		gormConfig.Logger = gormLogger.Default.LogMode(gormLogger.Silent)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Database.Type, err)
	}
	return db, nil
}
