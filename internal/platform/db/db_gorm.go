// Package db opens the gorm connection used by the auth server.
package db

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"loginform/internal/platform/config"
)

// Supported values of DB_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ErrUnsupportedDriver is returned for an unknown DB_DRIVER.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Config holds database connection settings.
type Config struct {
	Driver         string        // sqlite or postgres
	DSN            string        // file path for sqlite, connection string for postgres
	RunMigrations  bool          // AutoMigrate the given models after connecting
	ConnectTimeout time.Duration // give up retrying after this long
	RetryInterval  time.Duration // pause between attempts
}

// LoadConfigFromEnv はデータベース設定を環境変数から読み込みます。
// 既定値はカレントディレクトリのSQLiteファイル users.db です。
func LoadConfigFromEnv() Config {
	return Config{
		Driver:         strings.ToLower(config.String("DB_DRIVER", DriverSQLite)),
		DSN:            config.String("DB_DSN", "users.db"),
		RunMigrations:  config.Bool("RUN_MIGRATIONS", true),
		ConnectTimeout: config.Duration("DB_CONNECT_TIMEOUT", 60*time.Second),
		RetryInterval:  3 * time.Second,
	}
}

// Dialector はドライバー名に対応するgorm.Dialectorを返します。
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	case DriverPostgres:
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// ConnectWithRetry はopenerが成功するかtimeoutを過ぎるまで、interval間隔で接続を試行します。
func ConnectWithRetry(dsn string, timeout, interval time.Duration, opener func(dsn string) (*gorm.DB, error)) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for attempt := 1; ; attempt++ {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(interval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %d attempts: %w", attempt, err)
		}
		slog.Warn("db connect failed, retrying", "attempt", attempt, "error", err)
		time.Sleep(interval)
	}
}

// Open はcfgに従ってDBへ接続し、必要に応じてmodelsをマイグレーションします。
// 一意制約違反をgorm.ErrDuplicatedKeyとして扱えるようTranslateErrorを有効にします。
func Open(cfg Config, models ...any) (*gorm.DB, error) {
	if _, err := Dialector(cfg.Driver, cfg.DSN); err != nil {
		return nil, err
	}

	opener := func(dsn string) (*gorm.DB, error) {
		d, err := Dialector(cfg.Driver, dsn)
		if err != nil {
			return nil, err
		}
		return gorm.Open(d, &gorm.Config{TranslateError: true})
	}

	db, err := ConnectWithRetry(cfg.DSN, cfg.ConnectTimeout, cfg.RetryInterval, opener)
	if err != nil {
		return nil, err
	}
	slog.Info("database connected", "driver", cfg.Driver)

	if cfg.RunMigrations && len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return db, nil
}
