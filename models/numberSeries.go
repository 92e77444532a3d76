package models

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Per-module document number series. Numbers are allocated inside the
// same transaction that persists the document, so a rolled-back save
// never leaves a gap.
type DocumentNumberSeries struct {
	ModuleName   string `gorm:"primaryKey;size:50" json:"module_name"`
	Prefix       string `gorm:"size:10;not null" json:"prefix"`
	NextSequence int    `gorm:"not null;default:1" json:"next_sequence"`
}

const (
	ModulePurchase = "purchase"
	ModuleInvoice  = "invoice"

	PrefixPurchase = "PUR"
	PrefixInvoice  = "INV"
)

// NextDocumentNumber hands out the next number for a module, e.g.
// "PUR-0007", advancing the series in the caller's transaction scope.
func NextDocumentNumber(tx *gorm.DB, moduleName string, defaultPrefix string) (string, error) {
	var series DocumentNumberSeries
	err := tx.Where(DocumentNumberSeries{ModuleName: moduleName}).
		Attrs(DocumentNumberSeries{Prefix: defaultPrefix, NextSequence: 1}).
		FirstOrCreate(&series).Error
	if err != nil {
		return "", err
	}

	number := fmt.Sprintf("%s-%04d", series.Prefix, series.NextSequence)

	err = tx.Model(&DocumentNumberSeries{}).
		Where("module_name = ?", moduleName).
		Update("next_sequence", series.NextSequence+1).Error
	if err != nil {
		return "", err
	}
	return number, nil
}

func GetDocumentNumberSeriesAll(ctx context.Context, db *gorm.DB) ([]*DocumentNumberSeries, error) {
	var results []*DocumentNumberSeries
	err := db.WithContext(ctx).Order("module_name").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
