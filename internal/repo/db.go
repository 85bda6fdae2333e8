// Package repo implements the data persistence layer. This file contains
// database bootstrapping helpers for the SQL-backed store: driver selection,
// SQLite PRAGMAs, pool sizing, tracing, and schema migrations.
package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tbourn/go-storefront-backend/internal/domain"
)

// Supported SQL drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// DefaultSQLiteDSN is a shared in-memory database: nothing survives a restart.
const DefaultSQLiteDSN = "file:storefront?mode=memory&cache=shared"

// OpenOptions tunes Open.
type OpenOptions struct {
	// Tracing installs the OpenTelemetry GORM plugin.
	Tracing bool
	// Verbose enables GORM's SQL logger (warn level otherwise).
	Verbose bool
}

// Open connects to the database named by driver/dsn.
func Open(driver, dsn string, opt OpenOptions) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	if opt.Verbose {
		gcfg.Logger = logger.Default.LogMode(logger.Info)
	}

	var (
		db  *gorm.DB
		err error
	)
	switch strings.ToLower(driver) {
	case DriverSQLite:
		if dsn == "" {
			dsn = DefaultSQLiteDSN
		}
		db, err = openSQLite(dsn, gcfg)
	case DriverPostgres:
		db, err = gorm.Open(postgres.Open(dsn), gcfg)
	case DriverMySQL:
		db, err = gorm.Open(mysql.Open(dsn), gcfg)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	if opt.Tracing {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			return nil, fmt.Errorf("gorm tracing: %w", err)
		}
	}
	return db, nil
}

func openSQLite(dsn string, gcfg *gorm.Config) (*gorm.DB, error) {
	memory := isMemoryDSN(dsn)

	// Fail early if the parent directory of a file database does not exist.
	if !memory {
		if dir := filepath.Dir(dsn); dir != "." {
			if _, err := os.Stat(dir); err != nil {
				return nil, err
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(dsn), gcfg)
	if err != nil {
		return nil, err
	}

	if !memory {
		db.Exec("PRAGMA journal_mode=WAL;")
		db.Exec("PRAGMA synchronous=NORMAL;")
	}
	db.Exec("PRAGMA busy_timeout=5000;")

	if sqlDB, err := db.DB(); err == nil {
		if memory {
			// A shared-cache memory database locks whole tables; one
			// connection avoids "database table is locked".
			sqlDB.SetMaxOpenConns(1)
		} else {
			sqlDB.SetMaxOpenConns(10)
			sqlDB.SetMaxIdleConns(10)
			sqlDB.SetConnMaxIdleTime(5 * time.Minute)
			sqlDB.SetConnMaxLifetime(30 * time.Minute)
		}
	}

	return db, nil
}

// AutoMigrate creates or updates every storefront table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.CustomOrder{},
		&domain.Contact{},
		&domain.Idempotency{},
	)
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}
