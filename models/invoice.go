package models

import (
	"context"

	"github.com/aurumsoft/jewelbooks_backend/utils"
	"gorm.io/gorm"
)

// Invoice is a customer-side document: jewelry sold over the counter.
type Invoice struct {
	ID              int `gorm:"primary_key" json:"id"`
	TransactionCore `gorm:"embedded"`
	Items           []TransactionItem `gorm:"polymorphic:Reference;polymorphicValue:invoice" json:"items"`
}

func (Invoice) TableName() string { return "invoices" }

func GetInvoice(ctx context.Context, db *gorm.DB, id int) (*Invoice, error) {
	return utils.FetchModel[Invoice](ctx, db, id, "Items")
}

func GetInvoicesAll(ctx context.Context, db *gorm.DB, number *string, customerId *int) ([]*Invoice, error) {
	var results []*Invoice

	dbCtx := db.WithContext(ctx)
	if number != nil && len(*number) > 0 {
		dbCtx = dbCtx.Where("number LIKE ?", "%"+*number+"%")
	}
	if customerId != nil && *customerId > 0 {
		dbCtx = dbCtx.Where("party_id = ?", *customerId)
	}
	// db query
	err := dbCtx.Preload("Items").Order("date DESC, id DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func DeleteInvoice(ctx context.Context, db *gorm.DB, id int) (*Invoice, error) {
	result, err := utils.FetchModel[Invoice](ctx, db, id, "Items")
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reference_id = ? AND reference_type = ?", result.ID, ItemReferenceInvoice).
			Delete(&TransactionItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Invoice{}, result.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
