package models

import (
	"testing"

	"github.com/aurumsoft/jewelbooks_backend/config"
	"gorm.io/gorm"
)

func newModelTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenDatabase(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := MigrateAll(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
