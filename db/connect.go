package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	models "github.com/consolehq/console/dbmodels"
)

// Store wraps the database handle and exposes the durable operations the
// caches build on. There is deliberately no package-level handle: the
// process owns the lifecycle and passes the store down explicitly.
type Store struct {
	db *gorm.DB
}

// Connect opens the database selected by driver ("sqlite", "mysql" or
// "postgres") and migrates the schema.
func Connect(driver, dsn string) (*Store, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite", "":
		dialector = sqlite.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := gdb.AutoMigrate(&models.Asset{}, &models.Chat{}, &models.AssetStatus{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Store{db: gdb}, nil
}
