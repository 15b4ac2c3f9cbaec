package database

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"ia-admin/internal/logging"
	"ia-admin/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

const (
	maxAttempts  = 10
	retryBackoff = 2 * time.Second
)

// Open connects to the database, retrying while it comes up.
func Open(driver, dsn string, level slog.Level, lg *logging.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(driver, dsn)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{Logger: gormLogger(level)}

	var db *gorm.DB
	for i := 1; i <= maxAttempts; i++ {
		lg.Info("connecting to database", "driver", driver, "attempt", i, "max_attempts", maxAttempts)

		db, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			lg.Info("connected to database", "driver", driver)
			return db, nil
		}

		lg.Warn("failed to connect to database", logging.FieldError, err)
		if i < maxAttempts {
			time.Sleep(retryBackoff)
		}
	}
	return nil, fmt.Errorf("connect after %d attempts: %w", maxAttempts, err)
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "postgres":
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(withForeignKeys(dsn)), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

// sqlite leaves foreign keys off per connection unless asked.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

func gormLogger(level slog.Level) logger.Interface {
	gormLevel := logger.Warn
	switch {
	case level <= slog.LevelDebug:
		gormLevel = logger.Info
	case level >= slog.LevelError:
		gormLevel = logger.Error
	}
	return logger.New(log.New(os.Stdout, "", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormLevel,
		IgnoreRecordNotFoundError: true,
	})
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	tables := append(models.LookupTables(), models.DomainTables()...)
	if err := db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Init opens the database, migrates it, seeds the lookup catalog and
// installs the connection as DB.
func Init(driver, dsn, catalogFile string, level slog.Level, lg *logging.Logger) error {
	lg = lg.WithComponent(logging.ComponentDatabase)

	db, err := Open(driver, dsn, level, lg)
	if err != nil {
		return err
	}

	if err := Migrate(db); err != nil {
		return err
	}
	lg.Info("schema migrated", logging.FieldOperation, logging.OpMigrate)

	catalog, err := LoadCatalog(catalogFile)
	if err != nil {
		return err
	}
	created, err := SeedCatalog(db, catalog)
	if err != nil {
		return err
	}
	lg.Info("lookup catalog seeded", logging.FieldOperation, logging.OpSeed, "created", created)

	DB = db
	return nil
}
