// Package testutil provides an isolated, migrated in-memory database for tests.
package testutil

import (
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/diewo77/parts-inventory/internal/config"
	"github.com/diewo77/parts-inventory/internal/db"
)

// NewDB opens a shared-cache in-memory sqlite database named after the test
// and creates every table. Each test gets its own database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	d, err := db.Open(config.DatabaseConfig{
		Driver: "sqlite",
		DSNRaw: "file:" + name + "?mode=memory&cache=shared",
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := d.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(d); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return d
}
