package models

import "gorm.io/gorm"

// AllModels lists every table for migration, dependency-ordered.
func AllModels() []any {
	return []any{
		&Customer{},
		&Vendor{},
		&Product{},
		&Purchase{},
		&Invoice{},
		&TransactionItem{},
		&PaymentRecord{},
		&Expense{},
		&DocumentNumberSeries{},
		&Setting{},
	}
}

func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
