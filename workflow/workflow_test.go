package workflow

import (
	"context"
	"io"
	"testing"

	"github.com/aurumsoft/jewelbooks_backend/config"
	"github.com/aurumsoft/jewelbooks_backend/models"
	"github.com/aurumsoft/jewelbooks_backend/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory store with the full schema.
// The pool is pinned to one connection, so the database lives as long
// as the test does.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenDatabase(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := models.MigrateAll(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func seedVendor(t *testing.T, db *gorm.DB, name string) *models.Vendor {
	t.Helper()
	vendor, err := models.CreateVendor(context.Background(), db, &models.NewVendor{Name: name})
	if err != nil {
		t.Fatalf("seed vendor %s: %v", name, err)
	}
	return vendor
}

func seedCustomer(t *testing.T, db *gorm.DB, name string, opening string) *models.Customer {
	t.Helper()
	customer, err := models.CreateCustomer(context.Background(), db, &models.NewCustomer{
		Name:           name,
		OpeningBalance: utils.NewNumeric(decimal.RequireFromString(opening)),
	})
	if err != nil {
		t.Fatalf("seed customer %s: %v", name, err)
	}
	return customer
}

func vendorBalance(t *testing.T, db *gorm.DB, id int) decimal.Decimal {
	t.Helper()
	vendor, err := models.GetVendor(context.Background(), db, id)
	if err != nil {
		t.Fatalf("fetch vendor %d: %v", id, err)
	}
	return vendor.Balance
}

func customerBalance(t *testing.T, db *gorm.DB, id int) decimal.Decimal {
	t.Helper()
	customer, err := models.GetCustomer(context.Background(), db, id)
	if err != nil {
		t.Fatalf("fetch customer %d: %v", id, err)
	}
	return customer.Balance
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}

func testNum(s string) utils.Numeric {
	return utils.NewNumeric(decimal.RequireFromString(s))
}

// goldItem builds the standard test line: effective weight times rate.
func goldItem(netWeight, rate string) models.NewTransactionItem {
	return models.NewTransactionItem{
		Name:        "Gold chain",
		NetWeight:   testNum(netWeight),
		RatePerGram: testNum(rate),
		Quantity:    1,
	}
}
