// Package db opens and migrates the gorm storage handle shared by all repositories.
package db

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	// retryInterval is the pause between connection attempts.
	retryInterval = 3 * time.Second
	// defaultConnectTimeout bounds ConnectWithRetry when Config.ConnectTimeout is unset.
	defaultConnectTimeout = 60 * time.Second
)

// Config describes how to reach the database.
type Config struct {
	Driver       string
	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	InstanceName string // Cloud SQL instance; takes precedence over Host/Port
	Path         string // sqlite file path

	ConnectTimeout time.Duration
	RunMigrations  bool
	Debug          bool
}

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN returns the driver-specific connection string for cfg.
func BuildDSN(cfg Config) string {
	switch cfg.Driver {
	case DriverPostgres:
		host := cfg.Host
		if cfg.InstanceName != "" {
			host = "/cloudsql/" + cfg.InstanceName
		}
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			host, cfg.User, cfg.Password, cfg.Name)
		if cfg.InstanceName == "" && cfg.Port != "" {
			dsn += " port=" + cfg.Port
		}
		return dsn
	case DriverSQLite:
		path := cfg.Path
		if path == "" {
			path = "./parcel.db"
		}
		// SQLiteは接続ごとに外部キー制約を有効にする必要がある
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return path + sep + "_foreign_keys=on"
	default:
		if cfg.InstanceName != "" {
			return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
				cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	}
}

// NewOpener returns an Opener for cfg.Driver that logs queries through slog.
func NewOpener(cfg Config, logger *slog.Logger) Opener {
	gcfg := &gorm.Config{
		Logger:         newGormSlogLogger(logger, cfg.Debug),
		TranslateError: true,
	}
	return func(dsn string) (*gorm.DB, error) {
		switch cfg.Driver {
		case DriverPostgres:
			return gorm.Open(postgres.Open(dsn), gcfg)
		case DriverSQLite:
			return gorm.Open(sqlite.Open(dsn), gcfg)
		case DriverMySQL, "":
			return gorm.Open(gmysql.Open(dsn), gcfg)
		default:
			return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
		}
	}
}

// ConnectWithRetry calls open until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err)
		time.Sleep(min(retryInterval, remaining))
	}
}

// Open connects using cfg and, when cfg.RunMigrations is set, migrates models.
func Open(cfg Config, logger *slog.Logger, models ...any) (*gorm.DB, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	return openWithin(cfg, logger, timeout, models...)
}

// openWithin is Open with an explicit retry window. Zero means a single attempt.
func openWithin(cfg Config, logger *slog.Logger, timeout time.Duration, models ...any) (*gorm.DB, error) {
	db, err := ConnectWithRetry(BuildDSN(cfg), timeout, NewOpener(cfg, logger))
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return db, nil
}
