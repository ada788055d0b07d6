package db

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diewo77/parts-inventory/internal/config"
)

const (
	connectAttempts = 10
	connectBackoff  = 2 * time.Second
)

var passwordRegex = regexp.MustCompile(`(password=)([^\s]+)`)

// Open connects to the configured database, retrying while postgres starts up.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: newLogger(cfg.Debug)}

	if cfg.Driver == "sqlite" {
		db, err := gorm.Open(&sqlite.Dialector{DriverName: sqliteDriver, DSN: cfg.DSN()}, gcfg)
		if err != nil {
			return nil, errors.Wrap(err, "open sqlite")
		}
		return db, ping(db)
	}
	if cfg.Driver != "" && cfg.Driver != "postgres" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}

	dsn := NormalizeDSN(cfg.DSN())
	logrus.WithField("module", "db").Infof("Using DSN: %s", MaskDSN(dsn))

	var db *gorm.DB
	var err error
	for i := 0; i < connectAttempts; i++ {
		db, err = gorm.Open(postgres.Open(dsn), gcfg)
		if err == nil {
			break
		}
		logrus.WithField("module", "db").Warnf("connection attempt %d/%d failed: %v", i+1, connectAttempts, err)
		time.Sleep(connectBackoff)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database after retries")
	}
	return db, ping(db)
}

// Ping runs SELECT 1 against db.
func Ping(db *gorm.DB) error { return ping(db) }

func ping(db *gorm.DB) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return errors.Wrap(err, "db ping failed")
	}
	return nil
}

// MaskDSN hides the password of a key=value or URL style DSN.
func MaskDSN(dsn string) string {
	if strings.Contains(dsn, "password=") {
		return passwordRegex.ReplaceAllString(dsn, `${1}***`)
	}
	if i := strings.Index(dsn, "://"); i >= 0 {
		rest := dsn[i+3:]
		at := strings.Index(rest, "@")
		colon := strings.Index(rest, ":")
		if at > 0 && colon >= 0 && colon < at {
			return dsn[:i+3] + rest[:colon+1] + "***" + rest[at:]
		}
	}
	return dsn
}

// newLogger routes gorm's SQL log through logrus. It stays silent unless debug is set.
func newLogger(debug bool) logger.Interface {
	level := logger.Silent
	if debug {
		level = logger.Info
	}
	return logger.New(
		logrus.WithField("module", "gorm"),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)
}
